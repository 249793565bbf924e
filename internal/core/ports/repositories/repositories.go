package repositories

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose writes span several tables.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo             UserRepositoryFacade
	JourneyRepo          JourneyRepositoryFacade
	ExpenseRepo          ExpenseRepositoryFacade
	RecipeRepo           RecipeRepositoryFacade
	IngredientRepo       RecipeComponentRepository[domain.Ingredient]
	NutritionalValueRepo RecipeComponentRepository[domain.NutritionalValue]
	StepRepo             RecipeComponentRepository[domain.RecipeStep]
	ToolRepo             RecipeComponentRepository[domain.Tool]
	TagRepo              RecipeComponentRepository[domain.Tag]
}
