package pgsql

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	journeyRepo := newPgxJourneyRepository(dbPool, expenseRepo)

	children := recipeChildRepos{
		ingredients:       newPgxRecipeComponentRepository[domain.Ingredient, *domain.Ingredient](dbPool, ingredientTable),
		nutritionalValues: newPgxRecipeComponentRepository[domain.NutritionalValue, *domain.NutritionalValue](dbPool, nutritionalValueTable),
		steps:             newPgxRecipeComponentRepository[domain.RecipeStep, *domain.RecipeStep](dbPool, stepTable),
		tools:             newPgxRecipeComponentRepository[domain.Tool, *domain.Tool](dbPool, toolTable),
		tags:              newPgxRecipeComponentRepository[domain.Tag, *domain.Tag](dbPool, tagTable),
	}
	recipeRepo := newPgxRecipeRepository(dbPool, children)

	return portsrepo.RepositoryProvider{
		UserRepo:             userRepo,
		JourneyRepo:          journeyRepo,
		ExpenseRepo:          expenseRepo,
		RecipeRepo:           recipeRepo,
		IngredientRepo:       children.ingredients,
		NutritionalValueRepo: children.nutritionalValues,
		StepRepo:             children.steps,
		ToolRepo:             children.tools,
		TagRepo:              children.tags,
	}
}
