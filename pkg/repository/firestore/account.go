package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// accountDoc is the Firestore document representation of model.Account.
// The document ID is the phone number.
type accountDoc struct {
	Phone     string    `firestore:"phone"`
	CompanyID string    `firestore:"company_id"`
	Name      string    `firestore:"name"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"created_at"`
}

func toAccountDoc(a *model.Account) *accountDoc {
	return &accountDoc{
		Phone:     a.Phone,
		CompanyID: string(a.CompanyID),
		Name:      a.Name,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

func fromAccountDoc(d *accountDoc) *model.Account {
	return &model.Account{
		Phone:     d.Phone,
		CompanyID: model.CompanyID(d.CompanyID),
		Name:      d.Name,
		Role:      types.Role(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

// companyDoc is the Firestore document representation of model.Company
type companyDoc struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"created_at"`
}

func toCompanyDoc(c *model.Company) *companyDoc {
	return &companyDoc{
		ID:        string(c.ID),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func fromCompanyDoc(d *companyDoc) *model.Company {
	return &model.Company{
		ID:        model.CompanyID(d.ID),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

type accountRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAccountRepository(client *firestore.Client) *accountRepository {
	return &accountRepository{client: client}
}

func (r *accountRepository) accounts() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionAccounts)
}

func (r *accountRepository) companies() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionCompanies)
}

func (r *accountRepository) GetByPhone(ctx context.Context, phone string) (*model.Account, error) {
	snap, err := r.accounts().Doc(phone).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get account")
	}

	var d accountDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal account")
	}
	return fromAccountDoc(&d), nil
}

// FindOrProvision runs the lookup and the two inserts in one transaction.
// The account document ID is the phone number, so concurrent first messages
// from the same phone contend on the same document and exactly one
// transaction commits the creation.
func (r *accountRepository) FindOrProvision(ctx context.Context, phone, companyName string) (*model.Account, bool, error) {
	var account *model.Account
	var created bool

	accountRef := r.accounts().Doc(phone)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(accountRef)
		if err == nil {
			var d accountDoc
			if err := snap.DataTo(&d); err != nil {
				return goerr.Wrap(err, "failed to unmarshal account")
			}
			account = fromAccountDoc(&d)
			created = false
			return nil
		}
		if status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get account in transaction")
		}

		now := time.Now().UTC()
		company := &model.Company{
			ID:        model.NewCompanyID(),
			Name:      companyName,
			CreatedAt: now,
		}
		account = &model.Account{
			Phone:     phone,
			CompanyID: company.ID,
			Name:      companyName,
			Role:      types.RoleAdmin,
			CreatedAt: now,
		}

		companyRef := r.companies().Doc(string(company.ID))
		if err := tx.Create(companyRef, toCompanyDoc(company)); err != nil {
			return goerr.Wrap(err, "failed to create company")
		}
		if err := tx.Create(accountRef, toAccountDoc(account)); err != nil {
			return goerr.Wrap(err, "failed to create account")
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to find or provision account", goerr.V("phone", phone))
	}

	return account, created, nil
}

func (r *accountRepository) Get(ctx context.Context, id model.CompanyID) (*model.Company, error) {
	snap, err := r.companies().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get company", goerr.V("companyID", id))
	}

	var d companyDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal company")
	}
	return fromCompanyDoc(&d), nil
}
