package interfaces

import (
	"context"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// ContextMemoryRepository defines the interface for ContextMemory persistence
type ContextMemoryRepository interface {
	// Create appends a context memory with auto-generated ID
	Create(ctx context.Context, m *model.ContextMemory) (*model.ContextMemory, error)

	// ListRecent retrieves the most recent memories for the company,
	// ordered by CreatedAt descending
	ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.ContextMemory, error)
}

// InteractionRepository defines the interface for the per-turn audit trail
type InteractionRepository interface {
	// Create appends an interaction record with auto-generated ID
	Create(ctx context.Context, i *model.Interaction) (*model.Interaction, error)

	// ListRecent retrieves the most recent interactions for the company,
	// ordered by CreatedAt descending
	ListRecent(ctx context.Context, companyID model.CompanyID, limit int) ([]*model.Interaction, error)
}
