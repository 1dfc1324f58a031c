package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/interfaces"
)

// Collection names. Account documents are keyed by phone number so that
// lookup-by-phone is a point read and provisioning can run in a transaction
// against a deterministic document reference.
const (
	collectionAccounts        = "accounts"
	collectionCompanies       = "companies"
	collectionStockEntries    = "stock_entries"
	collectionSaleEntries     = "sale_entries"
	collectionLossEntries     = "loss_entries"
	collectionRecipes         = "recipes"
	collectionContextMemories = "context_memories"
	collectionInteractions    = "interactions"
)

type Firestore struct {
	client        *firestore.Client
	account       *accountRepository
	stock         *stockRepository
	sale          *saleRepository
	loss          *lossRepository
	recipe        *recipeRepository
	contextMemory *contextMemoryRepository
	interaction   *interactionRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names, used to isolate test runs
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.account.collectionPrefix = prefix
		f.stock.collectionPrefix = prefix
		f.sale.collectionPrefix = prefix
		f.loss.collectionPrefix = prefix
		f.recipe.collectionPrefix = prefix
		f.contextMemory.collectionPrefix = prefix
		f.interaction.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client:        client,
		account:       newAccountRepository(client),
		stock:         newStockRepository(client),
		sale:          newSaleRepository(client),
		loss:          newLossRepository(client),
		recipe:        newRecipeRepository(client),
		contextMemory: newContextMemoryRepository(client),
		interaction:   newInteractionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Account() interfaces.AccountRepository {
	return f.account
}

func (f *Firestore) Company() interfaces.CompanyRepository {
	return f.account
}

func (f *Firestore) Stock() interfaces.StockRepository {
	return f.stock
}

func (f *Firestore) Sale() interfaces.SaleRepository {
	return f.sale
}

func (f *Firestore) Loss() interfaces.LossRepository {
	return f.loss
}

func (f *Firestore) Recipe() interfaces.RecipeRepository {
	return f.recipe
}

func (f *Firestore) ContextMemory() interfaces.ContextMemoryRepository {
	return f.contextMemory
}

func (f *Firestore) Interaction() interfaces.InteractionRepository {
	return f.interaction
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
