package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/types"
)

// Authorization is the explicit result of a role check. Denials carry the
// user-facing reason; no error-based control flow is involved.
type Authorization struct {
	Allowed bool
	Reason  string
}

// Authorize looks up the account for the phone and checks it holds the
// required role. A missing account or a role mismatch denies with a
// user-facing reason; only storage failures return an error.
func (uc *UseCases) Authorize(ctx context.Context, phone string, required types.Role) (Authorization, error) {
	account, err := uc.repo.Account().GetByPhone(ctx, phone)
	if err != nil {
		return Authorization{}, goerr.Wrap(err, "failed to look up account for authorization")
	}
	if account == nil {
		return Authorization{Reason: uc.messages.AccountNotFound}, nil
	}
	if account.Role != required {
		return Authorization{
			Reason: fmt.Sprintf(uc.messages.PermissionDenied, account.Role, required),
		}, nil
	}
	return Authorization{Allowed: true}, nil
}
