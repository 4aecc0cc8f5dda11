package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type SubscriptionService interface {
	// Subscribe starts a 30-day subscription paid by a parallel order.
	Subscribe(ctx context.Context, accountID, planID uuid.UUID, paymentMethod string) (*response_models.SubscribeResponse, error)
	ListSubscriptions(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, accountID, id uuid.UUID) (*response_models.SubscriptionResponse, error)
}

type subscriptionService struct {
	subRepo   repositories.SubscriptionRepository
	planRepo  repositories.IPlanRepository
	publisher queue.Publisher
	now       func() time.Time
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	planRepo repositories.IPlanRepository,
	publisher queue.Publisher,
) SubscriptionService {
	return &subscriptionService{
		subRepo:   subRepo,
		planRepo:  planRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, accountID, planID uuid.UUID, paymentMethod string) (*response_models.SubscribeResponse, error) {
	method, err := parsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	today := utils.StartOfDay(s.now())
	sub := &db_models.PlanSubscription{
		AccountID: accountID,
		PlanID:    plan.ID,
		StartDate: today.Unix(),
		EndDate:   today.AddDate(0, 0, db_models.SubscriptionPeriodDays).Unix(),
		Active:    true,
	}
	order := &db_models.Order{
		AccountID:     accountID,
		Total:         plan.Price,
		PaymentMethod: method,
		Status:        db_models.OrderStatusCompleted,
	}

	if err := s.subRepo.CreateWithOrder(ctx, sub, order); err != nil {
		return nil, domainError("subscribe", err)
	}
	sub.Plan = plan

	publishEvent(ctx, s.publisher, queue.NewEvent(
		queue.EventSubscriptionCreated, accountID.String(), sub.ID.String(),
		fmt.Sprintf("New %s subscription until %s", plan.Name, utils.FormatDate(sub.EndDate)),
		map[string]any{"plan": plan.Name, "order_id": order.ID.String(), "price": plan.Price.StringFixed(2)},
	))

	return &response_models.SubscribeResponse{
		Subscription: toSubscriptionResponse(sub, s.now()),
		OrderID:      order.ID,
	}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	now := s.now()
	out := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubscriptionResponse(&subs[i], now))
	}
	return out, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, accountID, id uuid.UUID) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindForAccount(ctx, accountID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	resp := toSubscriptionResponse(sub, s.now())
	return &resp, nil
}
