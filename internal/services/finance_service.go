package services

import (
	"context"
	"time"

	"kampadmin/internal/models/response_models"
	"kampadmin/internal/repositories"
	"kampadmin/pkg/utils"
)

type FinanceServiceInterface interface {
	BuildReport(ctx context.Context, now time.Time) (*response_models.FinancialReport, error)
}

type FinanceService struct {
	transactionRepo repositories.TransactionRepository
	customerRepo    repositories.CustomerRepository
}

func NewFinanceService(transactionRepo repositories.TransactionRepository, customerRepo repositories.CustomerRepository) FinanceServiceInterface {
	return &FinanceService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
	}
}

// BuildReport sums non-deleted transactions into four calendar windows plus
// an all-time total, and lists per-transaction detail for customers that are
// still visible.
func (s *FinanceService) BuildReport(ctx context.Context, now time.Time) (*response_models.FinancialReport, error) {
	dayStart := utils.StartOfDay(now).Unix()
	weekStart := utils.StartOfWeek(now).Unix()
	monthStart := utils.StartOfMonth(now).Unix()
	yearStart := utils.StartOfYear(now).Unix()

	txns, err := s.transactionRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &response_models.FinancialReport{
		Details: make([]response_models.FinancialDetail, 0, len(txns)),
	}

	for _, txn := range txns {
		if txn.TransactionDate >= dayStart {
			report.Period.Daily += txn.Amount
		}
		if txn.TransactionDate >= weekStart {
			report.Period.Weekly += txn.Amount
		}
		if txn.TransactionDate >= monthStart {
			report.Period.Monthly += txn.Amount
		}
		if txn.TransactionDate >= yearStart {
			report.Period.Yearly += txn.Amount
		}
		report.Total += txn.Amount

		customer, err := s.customerRepo.FindById(ctx, txn.CustomerID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		// The cascade normally soft-deletes transactions with their customer;
		// this filter keeps the detail list correct even if a row slipped
		// through.
		if customer == nil || customer.IsDeleted {
			continue
		}

		report.Details = append(report.Details, response_models.FinancialDetail{
			CustomerID:      customer.ID,
			CustomerName:    customer.FullName,
			Amount:          txn.Amount,
			TransactionDate: txn.TransactionDate,
		})
	}

	return report, nil
}
