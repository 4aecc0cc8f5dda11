package db_models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusInactive SubscriptionStatus = "inactive"
)

const SubscriptionPeriodDays = 30

// PlanSubscription dates are unix seconds at UTC midnight.
type PlanSubscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`
	PlanID    uuid.UUID `gorm:"type:uuid;index;not null" json:"plan_id"`
	StartDate int64     `gorm:"not null" json:"start_date"`
	EndDate   int64     `gorm:"not null;index" json:"end_date"`
	Active    bool      `json:"active"`

	Account *Account `gorm:"constraint:OnDelete:CASCADE" json:"account,omitempty"`
	Plan    *Plan    `gorm:"constraint:OnDelete:CASCADE" json:"plan,omitempty"`
}

// EffectiveStatus is derived from the stored flag and end date, never persisted.
func (s PlanSubscription) EffectiveStatus(today time.Time) SubscriptionStatus {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).Unix()
	switch {
	case s.Active && s.EndDate >= day:
		return SubStatusActive
	case s.EndDate < day:
		return SubStatusExpired
	default:
		return SubStatusInactive
	}
}
