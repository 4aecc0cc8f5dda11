package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanInfoById(ctx context.Context, planID uuid.UUID) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func withFeatures(db *gorm.DB) *gorm.DB {
	return db.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (p PlanRepository) GetPlanInfoById(ctx context.Context, planID uuid.UUID) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).Scopes(withFeatures).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Scopes(withFeatures).Order("price ASC").Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}
