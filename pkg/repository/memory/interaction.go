package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type interactionRepository struct {
	mu           sync.RWMutex
	interactions map[model.CompanyID][]*model.Interaction
}

func newInteractionRepository() *interactionRepository {
	return &interactionRepository{
		interactions: make(map[model.CompanyID][]*model.Interaction),
	}
}

func copyInteraction(i *model.Interaction) *model.Interaction {
	cp := *i
	cp.Attachments = make([]model.Attachment, len(i.Attachments))
	copy(cp.Attachments, i.Attachments)
	return &cp
}

func (r *interactionRepository) Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyInteraction(i)
	if created.ID == "" {
		created.ID = model.NewInteractionID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.interactions[created.CompanyID] = append(r.interactions[created.CompanyID], created)
	return copyInteraction(created), nil
}

func (r *interactionRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.interactions[companyID]
	sorted := make([]*model.Interaction, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	result := []*model.Interaction{}
	for _, it := range sorted {
		if len(result) >= limit {
			break
		}
		result = append(result, copyInteraction(it))
	}
	return result, nil
}
