package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionPlan struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
}

type SubscriptionResponse struct {
	ID        uuid.UUID         `json:"id"`
	Plan      *SubscriptionPlan `json:"plan,omitempty"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Active    bool              `json:"active"`
	// Status is derived from Active and EndDate at read time.
	Status string `json:"status"`
}

type SubscribeResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	OrderID      uuid.UUID            `json:"order_id"`
}

type ScheduleResponse struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
}

type GymClassResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	Schedules   []ScheduleResponse `json:"schedules"`
}

type TimetableRow struct {
	Time string `json:"time"`
	// Classes maps a weekday to the class name, or "No Class".
	Classes map[string]string `json:"classes"`
}

type TimetableResponse struct {
	Days []string       `json:"days"`
	Rows []TimetableRow `json:"rows"`
}

type BookingResponse struct {
	ID          uuid.UUID        `json:"id"`
	Schedule    ScheduleResponse `json:"schedule"`
	BookingDate string           `json:"booking_date"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"created_at"`
}

type WorkoutResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Duration int       `json:"duration"`
	Calories int       `json:"calories"`
	Date     string    `json:"date"`
}
