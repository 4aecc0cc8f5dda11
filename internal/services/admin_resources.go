package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

// AdminResources is the back-office registry, one service per table.
type AdminResources struct {
	Accounts        AdminResourceService[dbm.Account]
	Categories      AdminResourceService[dbm.Category]
	Products        AdminResourceService[dbm.Product]
	Plans           AdminResourceService[dbm.Plan]
	PlanFeatures    AdminResourceService[dbm.PlanFeature]
	TeamMembers     AdminResourceService[dbm.TeamMember]
	GymClasses      AdminResourceService[dbm.GymClass]
	ClassSchedules  AdminResourceService[dbm.ClassSchedule]
	Bookings        AdminResourceService[dbm.ClassBooking]
	Workouts        AdminResourceService[dbm.Workout]
	Orders          AdminResourceService[dbm.Order]
	Subscriptions   AdminResourceService[dbm.PlanSubscription]
	BlogPosts       AdminResourceService[dbm.BlogPost]
	Newsletters     AdminResourceService[dbm.Newsletter]
	ContactMessages AdminResourceService[dbm.ContactMessage]
}

func requireExists(tx *gorm.DB, model interface{}, id uuid.UUID, notFound error) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func bookingRules(ctx context.Context, tx *gorm.DB, current, next *dbm.ClassBooking) error {
	if current != nil && current.Status != next.Status && !current.Status.CanTransition(next.Status) {
		return utils.ErrInvalidBookingTransition
	}
	tx = tx.WithContext(ctx)
	if err := requireExists(tx, &dbm.Account{}, next.AccountID, utils.ErrAccountNotFound); err != nil {
		return err
	}
	if err := requireExists(tx, &dbm.ClassSchedule{}, next.ClassScheduleID, utils.ErrScheduleNotFound); err != nil {
		return err
	}
	if next.Status != dbm.BookingBooked {
		return nil
	}
	taken, err := repositories.HasActiveBooking(tx, next)
	if err != nil {
		return err
	}
	if taken {
		return utils.ErrDuplicateBooking
	}
	return nil
}

func NewAdminResources(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	activities repositories.ActivityRepository,
	notifications repositories.NotificationRepository,
) *AdminResources {
	accounts := NewAdminResourceService(AdminResourceConfig[dbm.Account]{
		Name:       "Account",
		Filterable: []string{"role", "is_active"},
		Notify:     true,
		Hooks: AdminHooks[dbm.Account]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, current, next *dbm.Account) error {
				var clash dbm.Account
				err := tx.WithContext(ctx).Unscoped().
					Where("(username = ? OR LOWER(email) = LOWER(?)) AND id <> ?", next.Username, next.Email, next.ID).
					First(&clash).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				if err != nil {
					return err
				}
				if clash.Username == next.Username {
					return utils.ErrUsernameAlreadyExists
				}
				return utils.ErrEmailAlreadyExists
			},
			AfterCreate: func(ctx context.Context, tx *gorm.DB, m *dbm.Account) error {
				return tx.WithContext(ctx).Create(&dbm.Profile{AccountID: m.ID}).Error
			},
			Delete: accountRepo.DeleteCascade,
		},
	}, repositories.NewCrudRepository[dbm.Account](db, repositories.CrudOptions{
		SearchColumns: []string{"username", "email", "first_name", "last_name"},
		Preloads:      []string{"Profile"},
	}), activities, notifications)

	products := NewAdminResourceService(AdminResourceConfig[dbm.Product]{
		Name:       "Product",
		PageSize:   20,
		Filterable: []string{"category_id"},
		Hooks: AdminHooks[dbm.Product]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.Product) error {
				return requireExists(tx.WithContext(ctx), &dbm.Category{}, next.CategoryID, utils.ErrCategoryNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.Product](db, repositories.CrudOptions{
		SearchColumns: []string{"name", "description"},
		Preloads:      []string{"Category"},
	}), activities, notifications)

	planFeatures := NewAdminResourceService(AdminResourceConfig[dbm.PlanFeature]{
		Name:       "PlanFeature",
		Filterable: []string{"plan_id"},
		Hooks: AdminHooks[dbm.PlanFeature]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.PlanFeature) error {
				return requireExists(tx.WithContext(ctx), &dbm.Plan{}, next.PlanID, utils.ErrPlanNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.PlanFeature](db, repositories.CrudOptions{
		SearchColumns: []string{"feature"},
	}), activities, notifications)

	schedules := NewAdminResourceService(AdminResourceConfig[dbm.ClassSchedule]{
		Name:       "ClassSchedule",
		Filterable: []string{"day", "gym_class_id"},
		Hooks: AdminHooks[dbm.ClassSchedule]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.ClassSchedule) error {
				return requireExists(tx.WithContext(ctx), &dbm.GymClass{}, next.GymClassID, utils.RecordNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.ClassSchedule](db, repositories.CrudOptions{
		SearchColumns: []string{"day", "time"},
		Preloads:      []string{"GymClass"},
	}), activities, notifications)

	bookings := NewAdminResourceService(AdminResourceConfig[dbm.ClassBooking]{
		Name:       "ClassBooking",
		Filterable: []string{"status", "account_id"},
		Hooks:      AdminHooks[dbm.ClassBooking]{BeforeSave: bookingRules},
	}, repositories.NewCrudRepository[dbm.ClassBooking](db, repositories.CrudOptions{
		SearchColumns: []string{"status"},
		Preloads:      []string{"Account", "ClassSchedule.GymClass"},
		Order:         "booking_date DESC, created_at DESC",
	}), activities, notifications)

	workouts := NewAdminResourceService(AdminResourceConfig[dbm.Workout]{
		Name:       "Workout",
		Filterable: []string{"account_id"},
		Hooks: AdminHooks[dbm.Workout]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.Workout) error {
				return requireExists(tx.WithContext(ctx), &dbm.Account{}, next.AccountID, utils.ErrAccountNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.Workout](db, repositories.CrudOptions{
		SearchColumns: []string{"name"},
		Order:         "date DESC, created_at DESC",
	}), activities, notifications)

	orders := NewAdminResourceService(AdminResourceConfig[dbm.Order]{
		Name:       "Order",
		PageSize:   20,
		Filterable: []string{"status", "payment_method", "account_id"},
		Notify:     true,
		Hooks: AdminHooks[dbm.Order]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.Order) error {
				return requireExists(tx.WithContext(ctx), &dbm.Account{}, next.AccountID, utils.ErrAccountNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.Order](db, repositories.CrudOptions{
		SearchColumns: []string{"status", "payment_method"},
		Preloads:      []string{"Account", "Items.Product"},
	}), activities, notifications)

	subscriptions := NewAdminResourceService(AdminResourceConfig[dbm.PlanSubscription]{
		Name:       "PlanSubscription",
		Filterable: []string{"plan_id", "account_id", "active"},
		Hooks: AdminHooks[dbm.PlanSubscription]{
			BeforeSave: func(ctx context.Context, tx *gorm.DB, _, next *dbm.PlanSubscription) error {
				tx = tx.WithContext(ctx)
				if err := requireExists(tx, &dbm.Account{}, next.AccountID, utils.ErrAccountNotFound); err != nil {
					return err
				}
				return requireExists(tx, &dbm.Plan{}, next.PlanID, utils.ErrPlanNotFound)
			},
		},
	}, repositories.NewCrudRepository[dbm.PlanSubscription](db, repositories.CrudOptions{
		Preloads: []string{"Account", "Plan"},
	}), activities, notifications)

	return &AdminResources{
		Accounts: accounts,
		Categories: NewAdminResourceService(AdminResourceConfig[dbm.Category]{Name: "Category"},
			repositories.NewCrudRepository[dbm.Category](db, repositories.CrudOptions{
				SearchColumns: []string{"name"},
				Order:         "name ASC",
			}), activities, notifications),
		Products: products,
		Plans: NewAdminResourceService(AdminResourceConfig[dbm.Plan]{Name: "Plan"},
			repositories.NewCrudRepository[dbm.Plan](db, repositories.CrudOptions{
				SearchColumns: []string{"name", "description"},
				Preloads:      []string{"Features"},
			}), activities, notifications),
		PlanFeatures: planFeatures,
		TeamMembers: NewAdminResourceService(AdminResourceConfig[dbm.TeamMember]{Name: "TeamMember"},
			repositories.NewCrudRepository[dbm.TeamMember](db, repositories.CrudOptions{
				SearchColumns: []string{"name", "position"},
			}), activities, notifications),
		GymClasses: NewAdminResourceService(AdminResourceConfig[dbm.GymClass]{Name: "GymClass"},
			repositories.NewCrudRepository[dbm.GymClass](db, repositories.CrudOptions{
				SearchColumns: []string{"name", "description"},
				Preloads:      []string{"Schedules"},
			}), activities, notifications),
		ClassSchedules: schedules,
		Bookings:       bookings,
		Workouts:       workouts,
		Orders:         orders,
		Subscriptions:  subscriptions,
		BlogPosts: NewAdminResourceService(AdminResourceConfig[dbm.BlogPost]{Name: "BlogPost"},
			repositories.NewCrudRepository[dbm.BlogPost](db, repositories.CrudOptions{
				SearchColumns: []string{"title", "author", "content"},
			}), activities, notifications),
		Newsletters: NewAdminResourceService(AdminResourceConfig[dbm.Newsletter]{Name: "Newsletter"},
			repositories.NewCrudRepository[dbm.Newsletter](db, repositories.CrudOptions{
				SearchColumns: []string{"email"},
			}), activities, notifications),
		ContactMessages: NewAdminResourceService(AdminResourceConfig[dbm.ContactMessage]{Name: "ContactMessage"},
			repositories.NewCrudRepository[dbm.ContactMessage](db, repositories.CrudOptions{
				SearchColumns: []string{"name", "email", "message"},
			}), activities, notifications),
	}
}
