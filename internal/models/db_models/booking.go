package db_models

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingBooked    BookingStatus = "Booked"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

func (s BookingStatus) Valid() bool {
	return s == BookingBooked || s == BookingCancelled || s == BookingCompleted
}

// CanTransition reports whether a booking may move from s to next.
// Only booked rows move, and nothing returns to Booked.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	if s != BookingBooked {
		return false
	}
	return next == BookingCancelled || next == BookingCompleted
}

type ClassBooking struct {
	BaseModel
	AccountID       uuid.UUID     `gorm:"type:uuid;index;not null" json:"account_id"`
	ClassScheduleID uuid.UUID     `gorm:"type:uuid;index;not null" json:"class_schedule_id"`
	BookingDate     int64         `gorm:"index;not null" json:"booking_date"`
	Status          BookingStatus `gorm:"size:20;index;not null" json:"status"`

	Account       *Account       `gorm:"constraint:OnDelete:CASCADE" json:"account,omitempty"`
	ClassSchedule *ClassSchedule `gorm:"constraint:OnDelete:CASCADE" json:"class_schedule,omitempty"`
}
