package response_models

import (
	"github.com/google/uuid"

	"kampadmin/internal/models/db_models"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsProtected bool      `json:"is_protected"`
	CreatedAt   int64     `json:"created_at"`

	CanManageCustomers        bool `json:"can_manage_customers"`
	CanViewFinancials         bool `json:"can_view_financials"`
	CanManagePartnershipCodes bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `json:"can_view_partnership_stats"`
	CanManageAccess           bool `json:"can_manage_access"`
}

func NewUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsProtected: user.IsProtected,
		CreatedAt:   user.CreatedAt,

		CanManageCustomers:        user.CanManageCustomers,
		CanViewFinancials:         user.CanViewFinancials,
		CanManagePartnershipCodes: user.CanManagePartnershipCodes,
		CanViewPartnershipStats:   user.CanViewPartnershipStats,
		CanManageAccess:           user.CanManageAccess,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
