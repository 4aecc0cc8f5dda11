package db_models

import "github.com/google/uuid"

// Cart is created lazily on the first add and survives being emptied.
type Cart struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	Account   *Account   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_product;not null" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity >= 1" json:"quantity"`
	Cart      *Cart     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product   *Product  `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}
