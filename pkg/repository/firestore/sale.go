package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// saleEntryDoc is the Firestore document representation of model.SaleEntry
type saleEntryDoc struct {
	ID              string    `firestore:"id"`
	CompanyID       string    `firestore:"company_id"`
	UserPhone       string    `firestore:"user_phone"`
	Item            string    `firestore:"item"`
	Quantity        string    `firestore:"quantity"`
	OriginalMessage string    `firestore:"original_message"`
	CreatedAt       time.Time `firestore:"created_at"`
}

func toSaleEntryDoc(e *model.SaleEntry) *saleEntryDoc {
	return &saleEntryDoc{
		ID:              string(e.ID),
		CompanyID:       string(e.CompanyID),
		UserPhone:       e.UserPhone,
		Item:            e.Item,
		Quantity:        e.Quantity,
		OriginalMessage: e.OriginalMessage,
		CreatedAt:       e.CreatedAt,
	}
}

func fromSaleEntryDoc(d *saleEntryDoc) *model.SaleEntry {
	return &model.SaleEntry{
		ID:              model.SaleEntryID(d.ID),
		CompanyID:       model.CompanyID(d.CompanyID),
		UserPhone:       d.UserPhone,
		Item:            d.Item,
		Quantity:        d.Quantity,
		OriginalMessage: d.OriginalMessage,
		CreatedAt:       d.CreatedAt,
	}
}

type saleRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSaleRepository(client *firestore.Client) *saleRepository {
	return &saleRepository{client: client}
}

func (r *saleRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionSaleEntries)
}

func (r *saleRepository) Create(ctx context.Context, e *model.SaleEntry) (*model.SaleEntry, error) {
	created := *e
	if created.ID == "" {
		created.ID = model.NewSaleEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toSaleEntryDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create sale entry")
	}
	return &created, nil
}

func (r *saleRepository) ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.SaleEntry, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		Where("created_at", ">=", since).
		OrderBy("created_at", firestore.Desc)

	return r.list(ctx, query)
}

func (r *saleRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.SaleEntry, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	return r.list(ctx, query)
}

func (r *saleRepository) list(ctx context.Context, query firestore.Query) ([]*model.SaleEntry, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	entries := []*model.SaleEntry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate sale entries")
		}

		var d saleEntryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal sale entry")
		}
		entries = append(entries, fromSaleEntryDoc(&d))
	}
	return entries, nil
}
