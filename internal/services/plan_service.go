package services

import (
	"context"

	"github.com/google/uuid"

	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlanInfoById(ctx context.Context, planId uuid.UUID) (response_models.SubscriptionPlan, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {

	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for i := range plans {
		result = append(result, toPlanResponse(&plans[i]))
	}
	return result, nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planId uuid.UUID) (response_models.SubscriptionPlan, error) {

	plan, err := p.planRepo.GetPlanInfoById(ctx, planId)
	if err != nil {
		return response_models.SubscriptionPlan{}, utils.ErrDatabaseError
	}

	if plan == nil {
		return response_models.SubscriptionPlan{}, utils.ErrPlanNotFound
	}

	return toPlanResponse(plan), nil

}
