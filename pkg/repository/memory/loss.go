package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type lossRepository struct {
	mu      sync.RWMutex
	entries map[model.CompanyID][]*model.LossEntry
}

func newLossRepository() *lossRepository {
	return &lossRepository{
		entries: make(map[model.CompanyID][]*model.LossEntry),
	}
}

func copyLossEntry(e *model.LossEntry) *model.LossEntry {
	cp := *e
	return &cp
}

func (r *lossRepository) Create(ctx context.Context, e *model.LossEntry) (*model.LossEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyLossEntry(e)
	if created.ID == "" {
		created.ID = model.NewLossEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.entries[created.CompanyID] = append(r.entries[created.CompanyID], created)
	return copyLossEntry(created), nil
}

func (r *lossRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.LossEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.entries[companyID]
	sorted := make([]*model.LossEntry, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	result := []*model.LossEntry{}
	for _, e := range sorted {
		if len(result) >= limit {
			break
		}
		result = append(result, copyLossEntry(e))
	}
	return result, nil
}
