package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type stockRepository struct {
	mu      sync.RWMutex
	entries map[model.CompanyID][]*model.StockEntry
}

func newStockRepository() *stockRepository {
	return &stockRepository{
		entries: make(map[model.CompanyID][]*model.StockEntry),
	}
}

func copyStockEntry(e *model.StockEntry) *model.StockEntry {
	cp := *e
	return &cp
}

func (r *stockRepository) Create(ctx context.Context, e *model.StockEntry) (*model.StockEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyStockEntry(e)
	if created.ID == "" {
		created.ID = model.NewStockEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.entries[created.CompanyID] = append(r.entries[created.CompanyID], created)
	return copyStockEntry(created), nil
}

func (r *stockRepository) sortedDesc(companyID model.CompanyID) []*model.StockEntry {
	all := r.entries[companyID]
	sorted := make([]*model.StockEntry, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func (r *stockRepository) ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.StockEntry{}
	for _, e := range r.sortedDesc(companyID) {
		if e.CreatedAt.Before(since) {
			continue
		}
		result = append(result, copyStockEntry(e))
	}
	return result, nil
}

func (r *stockRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.StockEntry{}
	for _, e := range r.sortedDesc(companyID) {
		if len(result) >= limit {
			break
		}
		result = append(result, copyStockEntry(e))
	}
	return result, nil
}
