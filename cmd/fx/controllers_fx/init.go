package controllers_fx

import (
	"go.uber.org/fx"

	"gymfit/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewStoreController),
	fx.Provide(controllers.NewCartController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewMembershipController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewContentController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewAdminController))
