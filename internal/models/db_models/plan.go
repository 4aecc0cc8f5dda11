package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Plan struct {
	BaseModel
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `json:"description"`
	Features    []PlanFeature   `gorm:"foreignKey:PlanID" json:"features,omitempty"`
}

type PlanFeature struct {
	BaseModel
	PlanID  uuid.UUID `gorm:"type:uuid;index;not null" json:"plan_id"`
	Feature string    `gorm:"size:200;not null" json:"feature"`
	Plan    *Plan     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
