package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type CheckoutService interface {
	Checkout(ctx context.Context, accountID uuid.UUID, paymentMethod string) (*response_models.OrderResponse, error)
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error)
	GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderResponse, error)
}

type checkoutService struct {
	orderRepo repositories.OrderRepository
	publisher queue.Publisher
}

func NewCheckoutService(orderRepo repositories.OrderRepository, publisher queue.Publisher) CheckoutService {
	return &checkoutService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func parsePaymentMethod(s string) (db_models.PaymentMethod, error) {
	method := db_models.PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !method.Valid() {
		return "", utils.ErrInvalidPaymentMethod
	}
	return method, nil
}

func (s *checkoutService) Checkout(ctx context.Context, accountID uuid.UUID, paymentMethod string) (*response_models.OrderResponse, error) {
	method, err := parsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.CreateFromCart(ctx, accountID, method)
	if err != nil {
		return nil, domainError("checkout", err)
	}

	publishEvent(ctx, s.publisher, queue.NewEvent(
		queue.EventOrderCompleted, accountID.String(), order.ID.String(),
		fmt.Sprintf("Order of %s paid by %s", order.Total.StringFixed(2), order.PaymentMethod),
		map[string]any{"total": order.Total.StringFixed(2), "items": len(order.Items)},
	))

	// reload for product names
	saved, err := s.orderRepo.FindForAccount(ctx, accountID, order.ID)
	if err != nil || saved == nil {
		resp := toOrderResponse(order)
		return &resp, nil
	}
	resp := toOrderResponse(saved)
	return &resp, nil
}

func (s *checkoutService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error) {
	orders, err := s.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.FindForAccount(ctx, accountID, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}
