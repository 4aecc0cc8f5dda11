package request_models

import "github.com/google/uuid"

type BookClassRequest struct {
	ScheduleID  uuid.UUID `json:"schedule_id" binding:"required"`
	BookingDate string    `json:"booking_date" binding:"required"` // YYYY-MM-DD
}

type CreateWorkoutRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Duration int    `json:"duration" binding:"required,min=1"`
	Calories int    `json:"calories" binding:"min=0"`
	Date     string `json:"date" binding:"required"`
}
