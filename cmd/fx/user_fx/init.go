package user_fx

import (
	"go.uber.org/fx"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
)

var Module = fx.Provide(
	provideUserService)

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}
