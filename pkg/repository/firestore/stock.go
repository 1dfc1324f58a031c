package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// stockEntryDoc is the Firestore document representation of model.StockEntry
type stockEntryDoc struct {
	ID              string    `firestore:"id"`
	CompanyID       string    `firestore:"company_id"`
	UserPhone       string    `firestore:"user_phone"`
	Product         string    `firestore:"product"`
	Quantity        string    `firestore:"quantity"`
	ExpiryDate      string    `firestore:"expiry_date"`
	OriginalMessage string    `firestore:"original_message"`
	CreatedAt       time.Time `firestore:"created_at"`
}

func toStockEntryDoc(e *model.StockEntry) *stockEntryDoc {
	return &stockEntryDoc{
		ID:              string(e.ID),
		CompanyID:       string(e.CompanyID),
		UserPhone:       e.UserPhone,
		Product:         e.Product,
		Quantity:        e.Quantity,
		ExpiryDate:      e.ExpiryDate,
		OriginalMessage: e.OriginalMessage,
		CreatedAt:       e.CreatedAt,
	}
}

func fromStockEntryDoc(d *stockEntryDoc) *model.StockEntry {
	return &model.StockEntry{
		ID:              model.StockEntryID(d.ID),
		CompanyID:       model.CompanyID(d.CompanyID),
		UserPhone:       d.UserPhone,
		Product:         d.Product,
		Quantity:        d.Quantity,
		ExpiryDate:      d.ExpiryDate,
		OriginalMessage: d.OriginalMessage,
		CreatedAt:       d.CreatedAt,
	}
}

type stockRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newStockRepository(client *firestore.Client) *stockRepository {
	return &stockRepository{client: client}
}

func (r *stockRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionStockEntries)
}

func (r *stockRepository) Create(ctx context.Context, e *model.StockEntry) (*model.StockEntry, error) {
	created := *e
	if created.ID == "" {
		created.ID = model.NewStockEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toStockEntryDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create stock entry")
	}
	return &created, nil
}

func (r *stockRepository) ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.StockEntry, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		Where("created_at", ">=", since).
		OrderBy("created_at", firestore.Desc)

	return r.list(ctx, query)
}

func (r *stockRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.StockEntry, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	return r.list(ctx, query)
}

func (r *stockRepository) list(ctx context.Context, query firestore.Query) ([]*model.StockEntry, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	entries := []*model.StockEntry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate stock entries")
		}

		var d stockEntryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal stock entry")
		}
		entries = append(entries, fromStockEntryDoc(&d))
	}
	return entries, nil
}
