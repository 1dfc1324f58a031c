package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Account() AccountRepository
	Company() CompanyRepository
	Stock() StockRepository
	Sale() SaleRepository
	Loss() LossRepository
	Recipe() RecipeRepository
	ContextMemory() ContextMemoryRepository
	Interaction() InteractionRepository

	Close() error
}
