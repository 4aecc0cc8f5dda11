package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentUPI
}

// Order is a snapshot of a purchase. Storefront code never mutates it after creation.
type Order struct {
	BaseModel
	AccountID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"account_id"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	Status        OrderStatus     `gorm:"size:20;index;not null" json:"status"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Account       *Account        `gorm:"constraint:OnDelete:CASCADE" json:"account,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Order     *Order          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product   *Product        `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
