package interfaces

import (
	"context"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// StockRepository defines the interface for StockEntry data access.
// Entries are append-only; there is no update or delete.
type StockRepository interface {
	// Create appends a stock entry with auto-generated ID
	Create(ctx context.Context, e *model.StockEntry) (*model.StockEntry, error)

	// ListSince retrieves entries for the company created at or after since,
	// ordered by CreatedAt descending
	ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.StockEntry, error)

	// ListRecent retrieves the most recent entries for the company,
	// ordered by CreatedAt descending
	ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.StockEntry, error)
}

// SaleRepository defines the interface for SaleEntry data access
type SaleRepository interface {
	// Create appends a sale entry with auto-generated ID
	Create(ctx context.Context, e *model.SaleEntry) (*model.SaleEntry, error)

	// ListSince retrieves entries for the company created at or after since,
	// ordered by CreatedAt descending
	ListSince(ctx context.Context, companyID model.CompanyID, since time.Time) ([]*model.SaleEntry, error)

	// ListRecent retrieves the most recent entries for the company,
	// ordered by CreatedAt descending
	ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.SaleEntry, error)
}

// LossRepository defines the interface for LossEntry data access
type LossRepository interface {
	// Create appends a loss entry with auto-generated ID
	Create(ctx context.Context, e *model.LossEntry) (*model.LossEntry, error)

	// ListRecent retrieves the most recent entries for the company,
	// ordered by CreatedAt descending
	ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.LossEntry, error)
}
