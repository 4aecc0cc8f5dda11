package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymfit/internal/models/db_models"
)

type WorkoutRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Workout, error)
	Create(ctx context.Context, workout *db_models.Workout) error
	DeleteForAccount(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (w *workoutRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := w.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (w *workoutRepository) Create(ctx context.Context, workout *db_models.Workout) error {
	return w.db.WithContext(ctx).Omit(clause.Associations).Create(workout).Error
}

func (w *workoutRepository) DeleteForAccount(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	res := w.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.Workout{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
