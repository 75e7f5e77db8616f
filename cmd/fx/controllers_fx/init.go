package controllers_fx

import (
	"go.uber.org/fx"
	"kampadmin/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCustomerController),
	fx.Provide(controllers.NewFinanceController),
	fx.Provide(controllers.NewPartnershipController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewHealthController))
