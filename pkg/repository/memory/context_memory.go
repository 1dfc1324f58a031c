package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type contextMemoryRepository struct {
	mu       sync.RWMutex
	memories map[model.CompanyID][]*model.ContextMemory
}

func newContextMemoryRepository() *contextMemoryRepository {
	return &contextMemoryRepository{
		memories: make(map[model.CompanyID][]*model.ContextMemory),
	}
}

func copyContextMemory(m *model.ContextMemory) *model.ContextMemory {
	cp := *m
	cp.Tags = make([]string, len(m.Tags))
	copy(cp.Tags, m.Tags)
	return &cp
}

func (r *contextMemoryRepository) Create(ctx context.Context, m *model.ContextMemory) (*model.ContextMemory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyContextMemory(m)
	if created.ID == "" {
		created.ID = model.NewContextMemoryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.memories[created.CompanyID] = append(r.memories[created.CompanyID], created)
	return copyContextMemory(created), nil
}

func (r *contextMemoryRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.ContextMemory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.memories[companyID]
	sorted := make([]*model.ContextMemory, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	result := []*model.ContextMemory{}
	for _, m := range sorted {
		if len(result) >= limit {
			break
		}
		result = append(result, copyContextMemory(m))
	}
	return result, nil
}
