package finance_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideFinanceService)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideFinanceService(transactionRepo repositories.TransactionRepository, customerRepo repositories.CustomerRepository) services.FinanceServiceInterface {
	return services.NewFinanceService(transactionRepo, customerRepo)
}
