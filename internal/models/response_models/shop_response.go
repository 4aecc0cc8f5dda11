package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int               `json:"stock"`
	Rating      float64           `json:"rating"`
	Category    *CategoryResponse `json:"category,omitempty"`
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt string    `json:"created_at"`
}

type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
	Reviews []ReviewResponse  `json:"reviews"`
}

type StoreResponse struct {
	Products   PageResponse       `json:"products"`
	Categories []CategoryResponse `json:"categories"`
}

type CartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

type CartItemUpdateResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
	Clamped  bool      `json:"clamped"`
	Removed  bool      `json:"removed"`
}

type AjaxCartItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// AjaxCartResponse keeps the shape the storefront scripts poll.
type AjaxCartResponse struct {
	Success bool            `json:"success"`
	Items   []AjaxCartItem  `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

type AjaxMessageResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	CreatedAt     string              `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}
