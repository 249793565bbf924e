package services

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/barrique/barrique_backend/internal/dto"
)

// RecipeReaderSvc defines read operations for recipe data
type RecipeReaderSvc interface {
	// GetRecipeByID retrieves a recipe with all child collections loaded.
	GetRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error)

	// ListRecipesByUser retrieves the recipes owned by a user.
	ListRecipesByUser(ctx context.Context, userID int64, favoritesOnly bool) ([]domain.Recipe, error)
}

// RecipeWriterSvc defines write operations for recipe data
type RecipeWriterSvc interface {
	// CreateRecipe persists a recipe and any nested children it carries.
	CreateRecipe(ctx context.Context, userID int64, req dto.CreateRecipeRequest) (*domain.Recipe, error)

	// UpdateRecipe replaces the scalar fields of a recipe.
	UpdateRecipe(ctx context.Context, recipeID int64, req dto.UpdateRecipeRequest) (*domain.Recipe, error)

	// DeleteRecipe removes a recipe and all of its children.
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// RecipeAuthorizerSvc resolves a recipe on behalf of a user.
type RecipeAuthorizerSvc interface {
	// AuthorizeRecipe returns the recipe row if userID owns it, apperrors.ErrNotFound if it is
	// absent and apperrors.ErrForbidden otherwise. Child collections are not loaded.
	AuthorizeRecipe(ctx context.Context, recipeID int64, userID int64) (*domain.Recipe, error)
}

// RecipeSvcFacade combines all recipe-related service interfaces
type RecipeSvcFacade interface {
	RecipeReaderSvc
	RecipeWriterSvc
	RecipeAuthorizerSvc
}

// RecipeComponentSvc manages one child collection of a recipe.
type RecipeComponentSvc[T any] interface {
	// CreateComponent attaches item to the recipe and persists it.
	CreateComponent(ctx context.Context, recipeID int64, item T) (*T, error)

	// ListComponentsByRecipe returns the children of a recipe owned by userID.
	ListComponentsByRecipe(ctx context.Context, recipeID int64, userID int64) ([]T, error)

	// GetComponentByID retrieves a child by ID.
	GetComponentByID(ctx context.Context, id int64) (*T, error)

	// UpdateComponent copies the payload fields of data onto the stored child.
	UpdateComponent(ctx context.Context, id int64, data T) (*T, error)

	// DeleteComponent removes a child. It reports false if the child did not exist.
	DeleteComponent(ctx context.Context, id int64) (bool, error)
}
