package model

import (
	"time"

	"github.com/prato-lab/prato/pkg/domain/types"
)

// Account is a registered phone number bound to exactly one company.
// The phone number is the primary key; one phone maps to at most one account.
type Account struct {
	Phone     string `masq:"secret"`
	CompanyID CompanyID
	Name      string
	Role      types.Role
	CreatedAt time.Time
}

// IsAdmin reports whether the account holds the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == types.RoleAdmin
}
