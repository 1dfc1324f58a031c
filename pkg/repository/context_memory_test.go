package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/interfaces"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/domain/types"
)

func runContextMemoryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and keeps type and tags", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ContextMemory().Create(ctx, &model.ContextMemory{
			CompanyID: model.NewCompanyID(),
			UserPhone: uniquePhone(),
			Summary:   "Semana com mais vendas de pizza.",
			Type:      types.MemoryTypeWeeklySummary,
			Tags:      []string{"semanal", "resumo"},
		})
		gt.NoError(t, err).Required()
		gt.String(t, string(created.ID)).NotEqual("")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Value(t, created.Type).Equal(types.MemoryTypeWeeklySummary)
		gt.Array(t, created.Tags).Length(2)
	})

	t.Run("ListRecent returns newest first with limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		companyID := model.NewCompanyID()

		for _, summary := range []string{"primeira", "segunda", "terceira"} {
			_, err := repo.ContextMemory().Create(ctx, &model.ContextMemory{
				CompanyID: companyID,
				Summary:   summary,
				Type:      types.MemoryTypeAnalysisResult,
			})
			gt.NoError(t, err).Required()
			time.Sleep(10 * time.Millisecond)
		}

		memories, err := repo.ContextMemory().ListRecent(ctx, companyID, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, memories).Length(2).Required()
		gt.Value(t, memories[0].Summary).Equal("terceira")
		gt.Value(t, memories[1].Summary).Equal("segunda")
	})
}

func TestMemoryContextMemoryRepository(t *testing.T) {
	runContextMemoryRepositoryTest(t, newMemoryTestRepository)
}

func TestFirestoreContextMemoryRepository(t *testing.T) {
	runContextMemoryRepositoryTest(t, newFirestoreTestRepository)
}
