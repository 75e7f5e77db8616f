package db_models

import (
	"github.com/google/uuid"
)

// FinancialTransaction records one payment. Exactly one is written per paid
// enrollment, and it is soft-deleted in lockstep with its customer.
type FinancialTransaction struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Amount     float64
	// Unix seconds; stamped at creation.
	TransactionDate int64
	IsDeleted       bool `gorm:"index"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
