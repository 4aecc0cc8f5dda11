package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type CartService interface {
	AddToCart(ctx context.Context, accountID, productID uuid.UUID) (*response_models.CartResponse, error)
	UpdateCartItem(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*response_models.CartItemUpdateResponse, error)
	RemoveFromCart(ctx context.Context, accountID, itemID uuid.UUID) error
	GetCart(ctx context.Context, accountID uuid.UUID) (*response_models.CartResponse, error)
	CartCount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type cartService struct {
	cartRepo repositories.CartRepository
}

func NewCartService(cartRepo repositories.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

// domainError passes sentinel errors through and hides everything else.
func domainError(op string, err error) error {
	for _, known := range []error{
		utils.ErrProductNotFound,
		utils.ErrOutOfStock,
		utils.ErrInsufficientStock,
		utils.ErrCartItemNotFound,
		utils.ErrEmptyCart,
		utils.ErrDuplicateBooking,
	} {
		if errors.Is(err, known) {
			return known
		}
	}
	log.Printf("%s failed: %v", op, err)
	return utils.ErrDatabaseError
}

func (s *cartService) AddToCart(ctx context.Context, accountID, productID uuid.UUID) (*response_models.CartResponse, error) {
	if _, err := s.cartRepo.AddItem(ctx, accountID, productID); err != nil {
		return nil, domainError("add to cart", err)
	}
	return s.GetCart(ctx, accountID)
}

func (s *cartService) UpdateCartItem(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*response_models.CartItemUpdateResponse, error) {
	change, err := s.cartRepo.UpdateItemQuantity(ctx, accountID, itemID, quantity)
	if err != nil {
		return nil, domainError("update cart item", err)
	}
	return &response_models.CartItemUpdateResponse{
		ItemID:   itemID,
		Quantity: change.Quantity,
		Clamped:  change.Clamped,
		Removed:  change.Removed,
	}, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, accountID, itemID uuid.UUID) error {
	if _, err := s.cartRepo.RemoveItem(ctx, accountID, itemID); err != nil {
		return domainError("remove cart item", err)
	}
	return nil
}

// GetCart prices every line at the product's current price.
func (s *cartService) GetCart(ctx context.Context, accountID uuid.UUID) (*response_models.CartResponse, error) {
	cart, err := s.cartRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.CartResponse{
		Items: []response_models.CartItemResponse{},
		Total: decimal.Zero,
	}
	if cart == nil {
		return resp, nil
	}

	for _, item := range cart.Items {
		line := response_models.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if p := item.Product; p != nil {
			line.Name = p.Name
			line.ImageURL = p.ImageURL
			line.Price = p.Price
			line.LineTotal = lineTotal(p.Price, item.Quantity)
		}
		resp.Items = append(resp.Items, line)
		resp.Total = resp.Total.Add(line.LineTotal)
		resp.Count += item.Quantity
	}
	return resp, nil
}

func (s *cartService) CartCount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	n, err := s.cartRepo.CountItems(ctx, accountID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return n, nil
}
