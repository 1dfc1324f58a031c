package memory

import (
	"context"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/types"
)

// accountRepository holds accounts keyed by phone and companies keyed by ID.
// The single mutex covers both maps so FindOrProvision is atomic: the
// find-then-insert sequence can never race into two companies for one phone.
type accountRepository struct {
	mu        sync.RWMutex
	accounts  map[string]*model.Account
	companies map[model.CompanyID]*model.Company
}

func newAccountRepository() *accountRepository {
	return &accountRepository{
		accounts:  make(map[string]*model.Account),
		companies: make(map[model.CompanyID]*model.Company),
	}
}

func copyAccount(a *model.Account) *model.Account {
	cp := *a
	return &cp
}

func copyCompany(c *model.Company) *model.Company {
	cp := *c
	return &cp
}

func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[phone]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

func (r *accountRepository) FindOrProvision(ctx context.Context, phone, companyName string) (*model.Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.accounts[phone]; ok {
		return copyAccount(a), false, nil
	}

	now := time.Now().UTC()
	company := &model.Company{
		ID:        model.NewCompanyID(),
		Name:      companyName,
		CreatedAt: now,
	}
	account := &model.Account{
		Phone:     phone,
		CompanyID: company.ID,
		Name:      companyName,
		Role:      types.RoleAdmin,
		CreatedAt: now,
	}

	r.companies[company.ID] = company
	r.accounts[phone] = account

	return copyAccount(account), true, nil
}

func (r *accountRepository) Get(ctx context.Context, id model.CompanyID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return copyCompany(c), nil
}
