package memory

import (
	"github.com/prato-lab/prato/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository used for development and tests
type Memory struct {
	account       *accountRepository
	stock         *stockRepository
	sale          *saleRepository
	loss          *lossRepository
	recipe        *recipeRepository
	contextMemory *contextMemoryRepository
	interaction   *interactionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		account:       newAccountRepository(),
		stock:         newStockRepository(),
		sale:          newSaleRepository(),
		loss:          newLossRepository(),
		recipe:        newRecipeRepository(),
		contextMemory: newContextMemoryRepository(),
		interaction:   newInteractionRepository(),
	}
}

func (m *Memory) Account() interfaces.AccountRepository {
	return m.account
}

func (m *Memory) Company() interfaces.CompanyRepository {
	return m.account
}

func (m *Memory) Stock() interfaces.StockRepository {
	return m.stock
}

func (m *Memory) Sale() interfaces.SaleRepository {
	return m.sale
}

func (m *Memory) Loss() interfaces.LossRepository {
	return m.loss
}

func (m *Memory) Recipe() interfaces.RecipeRepository {
	return m.recipe
}

func (m *Memory) ContextMemory() interfaces.ContextMemoryRepository {
	return m.contextMemory
}

func (m *Memory) Interaction() interfaces.InteractionRepository {
	return m.interaction
}

func (m *Memory) Close() error {
	return nil
}
