package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
)

var Module = fx.Provide(provideContentRepo, provideContentService)

func provideContentRepo(db *gorm.DB) repositories.ContentRepository {
	return repositories.NewContentRepository(db)
}

func provideContentService(
	contentRepo repositories.ContentRepository,
	classRepo repositories.GymClassRepository,
	catalog services.CatalogService,
	plans services.PlanServiceInterface,
	mail services.IMailService,
	publisher queue.Publisher,
) services.ContentService {
	return services.NewContentService(contentRepo, classRepo, catalog, plans, mail, publisher)
}
