package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prato-lab/prato/pkg/domain/model"
)

type recipeRepository struct {
	mu      sync.RWMutex
	recipes map[model.CompanyID][]*model.Recipe
}

func newRecipeRepository() *recipeRepository {
	return &recipeRepository{
		recipes: make(map[model.CompanyID][]*model.Recipe),
	}
}

func copyRecipe(r *model.Recipe) *model.Recipe {
	cp := *r
	cp.Ingredients = make([]model.Ingredient, len(r.Ingredients))
	copy(cp.Ingredients, r.Ingredients)
	return &cp
}

func (r *recipeRepository) Create(ctx context.Context, rec *model.Recipe) (*model.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRecipe(rec)
	if created.ID == "" {
		created.ID = model.NewRecipeID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.recipes[created.CompanyID] = append(r.recipes[created.CompanyID], created)
	return copyRecipe(created), nil
}

func (r *recipeRepository) FindByProduct(ctx context.Context, companyID model.CompanyID, name string) (*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.recipes[companyID]
	sorted := make([]*model.Recipe, len(all))
	copy(sorted, all)
	// Most recently created wins when product names collide
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}
	for _, rec := range sorted {
		if strings.Contains(strings.ToLower(rec.Product), needle) {
			return copyRecipe(rec), nil
		}
	}
	return nil, nil
}
