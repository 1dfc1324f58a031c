package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/types"
	"google.golang.org/api/iterator"
)

// contextMemoryDoc is the Firestore document representation of model.ContextMemory
type contextMemoryDoc struct {
	ID        string    `firestore:"id"`
	CompanyID string    `firestore:"company_id"`
	UserPhone string    `firestore:"user_phone"`
	Summary   string    `firestore:"summary"`
	Type      string    `firestore:"type"`
	Tags      []string  `firestore:"tags"`
	CreatedAt time.Time `firestore:"created_at"`
}

func toContextMemoryDoc(m *model.ContextMemory) *contextMemoryDoc {
	return &contextMemoryDoc{
		ID:        string(m.ID),
		CompanyID: string(m.CompanyID),
		UserPhone: m.UserPhone,
		Summary:   m.Summary,
		Type:      string(m.Type),
		Tags:      m.Tags,
		CreatedAt: m.CreatedAt,
	}
}

func fromContextMemoryDoc(d *contextMemoryDoc) *model.ContextMemory {
	return &model.ContextMemory{
		ID:        model.ContextMemoryID(d.ID),
		CompanyID: model.CompanyID(d.CompanyID),
		UserPhone: d.UserPhone,
		Summary:   d.Summary,
		Type:      types.MemoryType(d.Type),
		Tags:      d.Tags,
		CreatedAt: d.CreatedAt,
	}
}

type contextMemoryRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newContextMemoryRepository(client *firestore.Client) *contextMemoryRepository {
	return &contextMemoryRepository{client: client}
}

func (r *contextMemoryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionContextMemories)
}

func (r *contextMemoryRepository) Create(ctx context.Context, m *model.ContextMemory) (*model.ContextMemory, error) {
	created := *m
	if created.ID == "" {
		created.ID = model.NewContextMemoryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toContextMemoryDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create context memory")
	}
	return &created, nil
}

func (r *contextMemoryRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.ContextMemory, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	memories := []*model.ContextMemory{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate context memories")
		}

		var d contextMemoryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal context memory")
		}
		memories = append(memories, fromContextMemoryDoc(&d))
	}
	return memories, nil
}
