package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// lossEntryDoc is the Firestore document representation of model.LossEntry
type lossEntryDoc struct {
	ID              string    `firestore:"id"`
	CompanyID       string    `firestore:"company_id"`
	UserPhone       string    `firestore:"user_phone"`
	Product         string    `firestore:"product"`
	Quantity        string    `firestore:"quantity"`
	Reason          string    `firestore:"reason"`
	OriginalMessage string    `firestore:"original_message"`
	CreatedAt       time.Time `firestore:"created_at"`
}

func toLossEntryDoc(e *model.LossEntry) *lossEntryDoc {
	return &lossEntryDoc{
		ID:              string(e.ID),
		CompanyID:       string(e.CompanyID),
		UserPhone:       e.UserPhone,
		Product:         e.Product,
		Quantity:        e.Quantity,
		Reason:          e.Reason,
		OriginalMessage: e.OriginalMessage,
		CreatedAt:       e.CreatedAt,
	}
}

func fromLossEntryDoc(d *lossEntryDoc) *model.LossEntry {
	return &model.LossEntry{
		ID:              model.LossEntryID(d.ID),
		CompanyID:       model.CompanyID(d.CompanyID),
		UserPhone:       d.UserPhone,
		Product:         d.Product,
		Quantity:        d.Quantity,
		Reason:          d.Reason,
		OriginalMessage: d.OriginalMessage,
		CreatedAt:       d.CreatedAt,
	}
}

type lossRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newLossRepository(client *firestore.Client) *lossRepository {
	return &lossRepository{client: client}
}

func (r *lossRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionLossEntries)
}

func (r *lossRepository) Create(ctx context.Context, e *model.LossEntry) (*model.LossEntry, error) {
	created := *e
	if created.ID == "" {
		created.ID = model.NewLossEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toLossEntryDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create loss entry")
	}
	return &created, nil
}

func (r *lossRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.LossEntry, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	entries := []*model.LossEntry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate loss entries")
		}

		var d lossEntryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal loss entry")
		}
		entries = append(entries, fromLossEntryDoc(&d))
	}
	return entries, nil
}
