package repositories

import (
	"context"

	"gorm.io/gorm"
	"kampadmin/internal/models/db_models"
)

type TransactionRepository interface {
	ListActive(ctx context.Context) ([]db_models.FinancialTransaction, error)
	ListActiveByCustomer(ctx context.Context, customerID string) ([]db_models.FinancialTransaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (t *transactionRepository) ListActive(ctx context.Context) ([]db_models.FinancialTransaction, error) {
	var txns []db_models.FinancialTransaction
	err := t.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("transaction_date DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (t *transactionRepository) ListActiveByCustomer(ctx context.Context, customerID string) ([]db_models.FinancialTransaction, error) {
	var txns []db_models.FinancialTransaction
	err := t.db.WithContext(ctx).
		Where("customer_id = ? AND is_deleted = ?", customerID, false).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
