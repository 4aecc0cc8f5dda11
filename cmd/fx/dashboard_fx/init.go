package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/internal/repositories"
	"gymfit/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideReportRepo, provideActivityRepo, provideNotificationRepo,
	provideDashboardService, provideReportService, provideNotificationService, provideAdminResources,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideReportRepo(db *gorm.DB) repositories.ReportRepository {
	return repositories.NewReportRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	reportRepo repositories.ReportRepository,
	notificationRepo repositories.NotificationRepository,
) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, reportRepo, notificationRepo)
}

func provideReportService(reportRepo repositories.ReportRepository) services.ReportService {
	return services.NewReportService(reportRepo)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository) services.NotificationService {
	return services.NewNotificationService(notificationRepo)
}

func provideAdminResources(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	activityRepo repositories.ActivityRepository,
	notificationRepo repositories.NotificationRepository,
) *services.AdminResources {
	return services.NewAdminResources(db, accountRepo, activityRepo, notificationRepo)
}
