package membership_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, provideSubscriptionRepo, provideGymClassRepo, provideBookingRepo, provideWorkoutRepo,
	providePlanService, provideSubscriptionService, provideBookingService, provideWorkoutService,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideGymClassRepo(db *gorm.DB) repositories.GymClassRepository {
	return repositories.NewGymClassRepository(db)
}

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	planRepo repositories.IPlanRepository,
	publisher queue.Publisher,
) services.SubscriptionService {
	return services.NewSubscriptionService(subRepo, planRepo, publisher)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	classRepo repositories.GymClassRepository,
	publisher queue.Publisher,
) services.BookingService {
	return services.NewBookingService(bookingRepo, classRepo, publisher)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository) services.WorkoutService {
	return services.NewWorkoutService(workoutRepo)
}
