package store_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideProductRepo, provideCartRepo, provideOrderRepo,
	provideCatalogService, provideCartService, provideCheckoutService,
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideCatalogService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) services.CatalogService {
	return services.NewCatalogService(categoryRepo, productRepo)
}

func provideCartService(cartRepo repositories.CartRepository) services.CartService {
	return services.NewCartService(cartRepo)
}

func provideCheckoutService(orderRepo repositories.OrderRepository, publisher queue.Publisher) services.CheckoutService {
	return services.NewCheckoutService(orderRepo, publisher)
}
