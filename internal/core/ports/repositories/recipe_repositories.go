package repositories

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
)

// RecipeReader defines read operations for recipe data
type RecipeReader interface {
	// FindRecipeByID retrieves a recipe with all of its child collections loaded.
	FindRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error)

	// FindRecipeHeaderByID retrieves only the recipe row, leaving the collections nil.
	FindRecipeHeaderByID(ctx context.Context, recipeID int64) (*domain.Recipe, error)

	// ListRecipesByUserID retrieves the recipes owned by a user without child collections.
	ListRecipesByUserID(ctx context.Context, userID int64, favoritesOnly bool) ([]domain.Recipe, error)
}

// RecipeWriter defines write operations for recipe data
type RecipeWriter interface {
	// SaveRecipe persists a recipe together with any child collections it carries.
	SaveRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)

	// UpdateRecipe updates the scalar fields of a recipe.
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error

	// DeleteRecipe removes a recipe and every child row in one transaction.
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// RecipeRepositoryFacade combines all recipe-related repository interfaces
type RecipeRepositoryFacade interface {
	RecipeReader
	RecipeWriter
}

// RecipeComponentRepository is the persistence port shared by the recipe child collections.
type RecipeComponentRepository[T any] interface {
	// SaveComponent persists a new child row and returns it with its generated ID.
	SaveComponent(ctx context.Context, item T) (*T, error)

	// FindComponentByID retrieves a child row by its ID.
	FindComponentByID(ctx context.Context, id int64) (*T, error)

	// ListComponentsByRecipeAndUser lists the children of a recipe owned by userID.
	ListComponentsByRecipeAndUser(ctx context.Context, recipeID int64, userID int64) ([]T, error)

	// ExistsComponent reports whether a child row with the given ID exists.
	ExistsComponent(ctx context.Context, id int64) (bool, error)

	// UpdateComponent overwrites the payload columns of an existing child row.
	UpdateComponent(ctx context.Context, item T) error

	// DeleteComponent removes a child row by ID.
	DeleteComponent(ctx context.Context, id int64) error
}
