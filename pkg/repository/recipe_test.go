package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/interfaces"
	"github.com/prato-lab/prato/pkg/domain/model"
)

func runRecipeRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and keeps ingredients", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Recipe().Create(ctx, &model.Recipe{
			CompanyID: model.NewCompanyID(),
			UserPhone: uniquePhone(),
			Product:   "bolo de cenoura",
			Ingredients: []model.Ingredient{
				{Name: "cenoura", Quantity: "3un"},
				{Name: "farinha", Quantity: "2kg"},
			},
		})
		gt.NoError(t, err).Required()
		gt.String(t, string(created.ID)).NotEqual("")
		gt.Array(t, created.Ingredients).Length(2).Required()
		gt.Value(t, created.Ingredients[0]).Equal(model.Ingredient{Name: "cenoura", Quantity: "3un"})
	})

	t.Run("FindByProduct matches case-insensitive substrings", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		companyID := model.NewCompanyID()

		_, err := repo.Recipe().Create(ctx, &model.Recipe{
			CompanyID:   companyID,
			Product:     "Bolo de Cenoura",
			Ingredients: []model.Ingredient{{Name: "cenoura", Quantity: "3un"}},
		})
		gt.NoError(t, err).Required()

		found, err := repo.Recipe().FindByProduct(ctx, companyID, "cenoura")
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil().Required()
		gt.Value(t, found.Product).Equal("Bolo de Cenoura")

		found, err = repo.Recipe().FindByProduct(ctx, companyID, "BOLO")
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil()
	})

	t.Run("FindByProduct prefers the most recent match", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		companyID := model.NewCompanyID()

		_, err := repo.Recipe().Create(ctx, &model.Recipe{
			CompanyID:   companyID,
			Product:     "bolo",
			Ingredients: []model.Ingredient{{Name: "farinha", Quantity: "1kg"}},
		})
		gt.NoError(t, err).Required()
		time.Sleep(10 * time.Millisecond)

		_, err = repo.Recipe().Create(ctx, &model.Recipe{
			CompanyID:   companyID,
			Product:     "bolo",
			Ingredients: []model.Ingredient{{Name: "farinha", Quantity: "2kg"}},
		})
		gt.NoError(t, err).Required()

		found, err := repo.Recipe().FindByProduct(ctx, companyID, "bolo")
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil().Required()
		gt.Value(t, found.Ingredients[0].Quantity).Equal("2kg")
	})

	t.Run("FindByProduct returns nil when nothing matches", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		found, err := repo.Recipe().FindByProduct(ctx, model.NewCompanyID(), "feijoada")
		gt.NoError(t, err).Required()
		gt.Value(t, found).Nil()
	})

	t.Run("recipes are scoped to their company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Recipe().Create(ctx, &model.Recipe{
			CompanyID:   model.NewCompanyID(),
			Product:     "bolo",
			Ingredients: []model.Ingredient{{Name: "farinha", Quantity: "1kg"}},
		})
		gt.NoError(t, err).Required()

		found, err := repo.Recipe().FindByProduct(ctx, model.NewCompanyID(), "bolo")
		gt.NoError(t, err).Required()
		gt.Value(t, found).Nil()
	})
}

func TestMemoryRecipeRepository(t *testing.T) {
	runRecipeRepositoryTest(t, newMemoryTestRepository)
}

func TestFirestoreRecipeRepository(t *testing.T) {
	runRecipeRepositoryTest(t, newFirestoreTestRepository)
}
