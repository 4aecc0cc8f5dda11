package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"category_id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	// Stock counts purchasable units left after cart reservations.
	Stock    int       `gorm:"not null;check:stock >= 0" json:"stock"`
	Rating   float64   `json:"rating"`
	Category *Category `gorm:"constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

type ProductReview struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Product   *Product  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Account   *Account  `gorm:"constraint:OnDelete:CASCADE" json:"account,omitempty"`
}
