package db_models

// Permission names one of the boolean grant flags on User. Every protected
// endpoint checks exactly one of them.
type Permission string

const (
	PermManageCustomers        Permission = "can_manage_customers"
	PermViewFinancials         Permission = "can_view_financials"
	PermManagePartnershipCodes Permission = "can_manage_partnership_codes"
	PermViewPartnershipStats   Permission = "can_view_partnership_stats"
	PermManageAccess           Permission = "can_manage_access"
)

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsActive     bool `gorm:"default:true"`
	// IsProtected marks the bootstrap admin accounts; they can never be
	// edited or deactivated through the user management endpoints.
	IsProtected bool

	CanManageCustomers        bool
	CanViewFinancials         bool
	CanManagePartnershipCodes bool
	CanViewPartnershipStats   bool
	CanManageAccess           bool
}

func (u *User) HasPermission(p Permission) bool {
	switch p {
	case PermManageCustomers:
		return u.CanManageCustomers
	case PermViewFinancials:
		return u.CanViewFinancials
	case PermManagePartnershipCodes:
		return u.CanManagePartnershipCodes
	case PermViewPartnershipStats:
		return u.CanViewPartnershipStats
	case PermManageAccess:
		return u.CanManageAccess
	default:
		return false
	}
}
