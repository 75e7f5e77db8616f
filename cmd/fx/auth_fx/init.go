package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
	"kampadmin/pkg/middleware"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideAuthMiddleware)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideAuthMiddleware(userRepo repositories.UserRepository) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(userRepo)
}
