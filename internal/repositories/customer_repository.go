package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"kampadmin/internal/models/db_models"
)

type CustomerRepository interface {
	// InsertWithTransaction persists the customer and, when txn is non-nil,
	// its financial transaction in a single database transaction.
	InsertWithTransaction(ctx context.Context, customer *db_models.Customer, txn *db_models.FinancialTransaction) error
	FindById(ctx context.Context, id string) (*db_models.Customer, error)
	ListAll(ctx context.Context, includeDeleted bool) ([]db_models.Customer, error)
	ListActiveByPartnershipCode(ctx context.Context, code string) ([]db_models.Customer, error)
	// SoftDelete flags the customer and cascades the flag to all of its
	// non-deleted financial transactions, atomically.
	SoftDelete(ctx context.Context, customerID uuid.UUID, deletedAt int64) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func (c *customerRepository) InsertWithTransaction(ctx context.Context, customer *db_models.Customer, txn *db_models.FinancialTransaction) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		if txn == nil {
			return nil
		}
		txn.CustomerID = customer.ID
		return tx.Create(txn).Error
	})
}

func (c *customerRepository) FindById(ctx context.Context, id string) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := c.db.WithContext(ctx).First(&customer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (c *customerRepository) ListAll(ctx context.Context, includeDeleted bool) ([]db_models.Customer, error) {
	query := c.db.WithContext(ctx).Model(&db_models.Customer{})
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var customers []db_models.Customer
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customerRepository) ListActiveByPartnershipCode(ctx context.Context, code string) ([]db_models.Customer, error) {
	var customers []db_models.Customer
	err := c.db.WithContext(ctx).
		Where("partnership_code = ? AND is_deleted = ?", code, false).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customerRepository) SoftDelete(ctx context.Context, customerID uuid.UUID, deletedAt int64) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&db_models.Customer{}).
			Where("id = ? AND is_deleted = ?", customerID, false).
			Updates(map[string]any{"is_deleted": true, "deleted_at": deletedAt}).Error
		if err != nil {
			return err
		}
		return tx.Model(&db_models.FinancialTransaction{}).
			Where("customer_id = ? AND is_deleted = ?", customerID, false).
			Update("is_deleted", true).Error
	})
}
