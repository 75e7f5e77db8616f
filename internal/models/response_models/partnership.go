package response_models

import (
	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
)

type PartnershipCodeResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt int64     `json:"created_at"`
}

func NewPartnershipCodeResponse(code *db_models.PartnershipCode) PartnershipCodeResponse {
	return PartnershipCodeResponse{
		ID:        code.ID,
		Code:      code.Code,
		IsActive:  code.IsActive,
		CreatedAt: code.CreatedAt,
	}
}

type PartnershipStats struct {
	Code          string  `json:"code"`
	CustomerCount int     `json:"customer_count"`
	TotalAmount   float64 `json:"total_amount"`
}
