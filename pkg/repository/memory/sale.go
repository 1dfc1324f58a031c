package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type saleRepository struct {
	mu      sync.RWMutex
	entries map[model.CompanyID][]*model.SaleEntry
}

func newSaleRepository() *saleRepository {
	return &saleRepository{
		entries: make(map[model.CompanyID][]*model.SaleEntry),
	}
}

func copySaleEntry(e *model.SaleEntry) *model.SaleEntry {
	cp := *e
	return &cp
}

func (r *saleRepository) Create(ctx context.Context, e *model.SaleEntry) (*model.SaleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copySaleEntry(e)
	if created.ID == "" {
		created.ID = model.NewSaleEntryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.entries[created.CompanyID] = append(r.entries[created.CompanyID], created)
	return copySaleEntry(created), nil
}

func (r *saleRepository) sortedDesc(companyID model.CompanyID) []*model.SaleEntry {
	all := r.entries[companyID]
	sorted := make([]*model.SaleEntry, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func (r *saleRepository) ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.SaleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.SaleEntry{}
	for _, e := range r.sortedDesc(companyID) {
		if e.CreatedAt.Before(since) {
			continue
		}
		result = append(result, copySaleEntry(e))
	}
	return result, nil
}

func (r *saleRepository) ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.SaleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.SaleEntry{}
	for _, e := range r.sortedDesc(companyID) {
		if len(result) >= limit {
			break
		}
		result = append(result, copySaleEntry(e))
	}
	return result, nil
}
