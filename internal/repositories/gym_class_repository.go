package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

type GymClassRepository interface {
	ListClasses(ctx context.Context, limit int) ([]db_models.GymClass, error)
	FindClass(ctx context.Context, id uuid.UUID) (*db_models.GymClass, error)
	ListSchedules(ctx context.Context) ([]db_models.ClassSchedule, error)
	FindSchedule(ctx context.Context, id uuid.UUID) (*db_models.ClassSchedule, error)
}

type gymClassRepository struct {
	db *gorm.DB
}

func NewGymClassRepository(db *gorm.DB) GymClassRepository {
	return &gymClassRepository{db: db}
}

func (g *gymClassRepository) ListClasses(ctx context.Context, limit int) ([]db_models.GymClass, error) {
	var classes []db_models.GymClass
	tx := g.db.WithContext(ctx).Preload("Schedules").Order("name ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&classes).Error
	return classes, err
}

func (g *gymClassRepository) FindClass(ctx context.Context, id uuid.UUID) (*db_models.GymClass, error) {
	var class db_models.GymClass
	err := g.db.WithContext(ctx).Preload("Schedules").First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (g *gymClassRepository) ListSchedules(ctx context.Context) ([]db_models.ClassSchedule, error) {
	var schedules []db_models.ClassSchedule
	err := g.db.WithContext(ctx).Preload("GymClass").Find(&schedules).Error
	return schedules, err
}

func (g *gymClassRepository) FindSchedule(ctx context.Context, id uuid.UUID) (*db_models.ClassSchedule, error) {
	var schedule db_models.ClassSchedule
	err := g.db.WithContext(ctx).Preload("GymClass").First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}
