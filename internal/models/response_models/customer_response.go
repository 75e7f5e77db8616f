package response_models

import (
	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
)

type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	ClassLevel string    `json:"class_level"`

	Camps  []string  `json:"camps"`
	Prices []float64 `json:"prices"`

	PartnershipCode string `json:"partnership_code,omitempty"`
	PreviousRank    *int   `json:"previous_rank,omitempty"`
	City            string `json:"city"`

	IsPaid    bool   `json:"is_paid"`
	IsDeleted bool   `json:"is_deleted"`
	DeletedAt *int64 `json:"deleted_at,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func NewCustomerResponse(customer *db_models.Customer) CustomerResponse {
	camps := make([]string, len(customer.Camps))
	copy(camps, customer.Camps)
	prices := make([]float64, len(customer.Prices))
	copy(prices, customer.Prices)

	return CustomerResponse{
		ID:         customer.ID,
		FullName:   customer.FullName,
		Phone:      customer.Phone,
		Email:      customer.Email,
		ClassLevel: customer.ClassLevel,

		Camps:  camps,
		Prices: prices,

		PartnershipCode: customer.PartnershipCode,
		PreviousRank:    customer.PreviousRank,
		City:            customer.City,

		IsPaid:    customer.IsPaid,
		IsDeleted: customer.IsDeleted,
		DeletedAt: customer.DeletedAt,
		CreatedAt: customer.CreatedAt,
	}
}
