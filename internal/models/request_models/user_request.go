package request_models

type UserCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	CanManageCustomers        bool `json:"can_manage_customers"`
	CanViewFinancials         bool `json:"can_view_financials"`
	CanManagePartnershipCodes bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `json:"can_view_partnership_stats"`
	CanManageAccess           bool `json:"can_manage_access"`
}

// UserUpdateRequest is a partial update: nil pointers mean "leave unchanged",
// which keeps "not provided" distinct from an explicit false.
type UserUpdateRequest struct {
	CanManageCustomers        *bool `json:"can_manage_customers"`
	CanViewFinancials         *bool `json:"can_view_financials"`
	CanManagePartnershipCodes *bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   *bool `json:"can_view_partnership_stats"`
	CanManageAccess           *bool `json:"can_manage_access"`
	IsActive                  *bool `json:"is_active"`
}
