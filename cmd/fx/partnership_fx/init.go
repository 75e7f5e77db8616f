package partnership_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
)

var Module = fx.Provide(
	provideCodeRepo, providePartnershipService)

func provideCodeRepo(db *gorm.DB) repositories.PartnershipCodeRepository {
	return repositories.NewPartnershipCodeRepository(db)
}

func providePartnershipService(codeRepo repositories.PartnershipCodeRepository, customerRepo repositories.CustomerRepository) services.PartnershipServiceInterface {
	return services.NewPartnershipService(codeRepo, customerRepo)
}
