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

// attachmentDoc is the Firestore representation of model.Attachment
type attachmentDoc struct {
	Type     string `firestore:"type"`
	URL      string `firestore:"url"`
	Filename string `firestore:"filename"`
}

// interactionDoc is the Firestore document representation of model.Interaction
type interactionDoc struct {
	ID          string          `firestore:"id"`
	CompanyID   string          `firestore:"company_id"`
	UserPhone   string          `firestore:"user_phone"`
	Message     string          `firestore:"message"`
	Intent      string          `firestore:"intent"`
	Response    string          `firestore:"response"`
	Attachments []attachmentDoc `firestore:"attachments"`
	ContextUsed string          `firestore:"context_used"`
	CreatedAt   time.Time       `firestore:"created_at"`
}

func toInteractionDoc(i *model.Interaction) *interactionDoc {
	attachments := make([]attachmentDoc, len(i.Attachments))
	for idx, a := range i.Attachments {
		attachments[idx] = attachmentDoc{Type: a.Type, URL: a.URL, Filename: a.Filename}
	}
	return &interactionDoc{
		ID:          string(i.ID),
		CompanyID:   string(i.CompanyID),
		UserPhone:   i.UserPhone,
		Message:     i.Message,
		Intent:      string(i.Intent),
		Response:    i.Response,
		Attachments: attachments,
		ContextUsed: i.ContextUsed,
		CreatedAt:   i.CreatedAt,
	}
}

func fromInteractionDoc(d *interactionDoc) *model.Interaction {
	attachments := make([]model.Attachment, len(d.Attachments))
	for idx, a := range d.Attachments {
		attachments[idx] = model.Attachment{Type: a.Type, URL: a.URL, Filename: a.Filename}
	}
	return &model.Interaction{
		ID:          model.InteractionID(d.ID),
		CompanyID:   model.CompanyID(d.CompanyID),
		UserPhone:   d.UserPhone,
		Message:     d.Message,
		Intent:      types.Intent(d.Intent),
		Response:    d.Response,
		Attachments: attachments,
		ContextUsed: d.ContextUsed,
		CreatedAt:   d.CreatedAt,
	}
}

type interactionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInteractionRepository(client *firestore.Client) *interactionRepository {
	return &interactionRepository{client: client}
}

func (r *interactionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionInteractions)
}

func (r *interactionRepository) Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error) {
	created := *i
	if created.ID == "" {
		created.ID = model.NewInteractionID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toInteractionDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create interaction")
	}
	return &created, nil
}

func (r *interactionRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.Interaction, error) {
	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	interactions := []*model.Interaction{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate interactions")
		}

		var d interactionDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal interaction")
		}
		interactions = append(interactions, fromInteractionDoc(&d))
	}
	return interactions, nil
}
