package interfaces

import (
	"context"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// RecipeRepository defines the interface for Recipe data access
type RecipeRepository interface {
	// Create appends a recipe with auto-generated ID
	Create(ctx context.Context, r *model.Recipe) (*model.Recipe, error)

	// FindByProduct retrieves the recipe whose product name contains the
	// given name, case-insensitively. Product names are not unique; the
	// most recently created matching recipe wins.
	// Returns nil, nil if no recipe matches.
	FindByProduct(ctx context.Context, companyID model.CompanyID, name string) (*model.Recipe, error)
}
