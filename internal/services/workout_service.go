package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type WorkoutService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]response_models.WorkoutResponse, error)
	Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type workoutService struct {
	workoutRepo repositories.WorkoutRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) List(ctx context.Context, accountID uuid.UUID) ([]response_models.WorkoutResponse, error) {
	workouts, err := s.workoutRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, toWorkoutResponse(&workouts[i]))
	}
	return out, nil
}

func (s *workoutService) Create(ctx context.Context, accountID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	day, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}
	if request.Duration <= 0 || request.Calories < 0 {
		return nil, utils.ErrInvalidInput
	}

	workout := &db_models.Workout{
		AccountID: accountID,
		Name:      strings.TrimSpace(request.Name),
		Duration:  request.Duration,
		Calories:  request.Calories,
		Date:      day.Unix(),
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toWorkoutResponse(workout)
	return &resp, nil
}

func (s *workoutService) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	deleted, err := s.workoutRepo.DeleteForAccount(ctx, accountID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrWorkoutNotFound
	}
	return nil
}
