package response_models

import (
	"github.com/google/uuid"
)

type FinancialPeriod struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

type FinancialDetail struct {
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Amount          float64   `json:"amount"`
	TransactionDate int64     `json:"transaction_date"`
}

type FinancialReport struct {
	Period  FinancialPeriod   `json:"period"`
	Details []FinancialDetail `json:"details"`
	Total   float64           `json:"total"`
}
