package request_models

import "github.com/google/uuid"

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	// Zero or less removes the item.
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type SubscribeRequest struct {
	PlanID        uuid.UUID `json:"plan_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}
