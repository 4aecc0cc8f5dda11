package db_models

import "github.com/google/uuid"

type Workout struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Duration  int       `gorm:"not null" json:"duration"` // minutes
	Calories  int       `json:"calories"`
	Date      int64     `gorm:"index;not null" json:"date"`
	Account   *Account  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
