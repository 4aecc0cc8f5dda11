package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymfit/internal/models/db_models"
)

type SubscriptionRepository interface {
	// CreateWithOrder stores the subscription and its payment order atomically.
	CreateWithOrder(ctx context.Context, sub *db_models.PlanSubscription, order *db_models.Order) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PlanSubscription, error)
	FindForAccount(ctx context.Context, accountID, id uuid.UUID) (*db_models.PlanSubscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) CreateWithOrder(ctx context.Context, sub *db_models.PlanSubscription, order *db_models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(sub).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(order).Error
	})
}

func (s *subscriptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.PlanSubscription, error) {
	var subs []db_models.PlanSubscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *subscriptionRepository) FindForAccount(ctx context.Context, accountID, id uuid.UUID) (*db_models.PlanSubscription, error) {
	var sub db_models.PlanSubscription
	err := s.db.WithContext(ctx).
		Preload("Plan.Features").
		Where("id = ? AND account_id = ?", id, accountID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
