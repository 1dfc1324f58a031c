package interfaces

import (
	"context"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// AccountRepository defines the interface for Account data access.
// Accounts are keyed by phone number; one phone maps to at most one account.
type AccountRepository interface {
	// GetByPhone retrieves an account by phone number.
	// Returns nil, nil if no account exists for the phone.
	GetByPhone(ctx context.Context, phone string) (*model.Account, error)

	// FindOrProvision atomically looks up the account for the phone, creating
	// a new Company (named companyName) plus an admin Account bound to it when
	// absent. Two near-simultaneous first messages from the same phone must
	// never create two companies. Returns the account and whether it was
	// newly provisioned.
	FindOrProvision(ctx context.Context, phone, companyName string) (*model.Account, bool, error)
}

// CompanyRepository defines the interface for Company data access
type CompanyRepository interface {
	// Get retrieves a company by ID.
	// Returns nil, nil if the company does not exist.
	Get(ctx context.Context, id model.CompanyID) (*model.Company, error)
}
