package db_models

import "github.com/google/uuid"

var ScheduleDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var ScheduleTimes = []string{"06:00 AM", "09:00 AM", "06:00 PM"}

type GymClass struct {
	BaseModel
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Schedules   []ClassSchedule `gorm:"foreignKey:GymClassID" json:"schedules,omitempty"`
}

type ClassSchedule struct {
	BaseModel
	GymClassID uuid.UUID `gorm:"type:uuid;index;not null" json:"gym_class_id"`
	Day        string    `gorm:"size:10;not null" json:"day"`
	Time       string    `gorm:"size:10;not null" json:"time"`
	GymClass   *GymClass `gorm:"constraint:OnDelete:CASCADE" json:"gym_class,omitempty"`
}

func ValidScheduleDay(day string) bool {
	for _, d := range ScheduleDays {
		if d == day {
			return true
		}
	}
	return false
}

func ValidScheduleTime(t string) bool {
	for _, v := range ScheduleTimes {
		if v == t {
			return true
		}
	}
	return false
}
