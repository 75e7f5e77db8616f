package customer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
)

var Module = fx.Provide(
	provideCustomerRepo, provideCustomerService)

func provideCustomerRepo(db *gorm.DB) repositories.CustomerRepository {
	return repositories.NewCustomerRepository(db)
}

func provideCustomerService(customerRepo repositories.CustomerRepository, codeRepo repositories.PartnershipCodeRepository) services.CustomerServiceInterface {
	return services.NewCustomerService(customerRepo, codeRepo)
}
