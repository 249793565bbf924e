package pgsql

import (
	"context"
	"fmt"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// recipeChildRepos groups the component repositories a recipe cascades to.
type recipeChildRepos struct {
	ingredients       *PgxRecipeComponentRepository[domain.Ingredient, *domain.Ingredient]
	nutritionalValues *PgxRecipeComponentRepository[domain.NutritionalValue, *domain.NutritionalValue]
	steps             *PgxRecipeComponentRepository[domain.RecipeStep, *domain.RecipeStep]
	tools             *PgxRecipeComponentRepository[domain.Tool, *domain.Tool]
	tags              *PgxRecipeComponentRepository[domain.Tag, *domain.Tag]
}

type PgxRecipeRepository struct {
	BaseRepository
	children recipeChildRepos
}

func newPgxRecipeRepository(pool pgxPool, children recipeChildRepos) *PgxRecipeRepository {
	return &PgxRecipeRepository{
		BaseRepository: BaseRepository{Pool: pool},
		children:       children,
	}
}

// Ensure PgxRecipeRepository implements portsrepo.RecipeRepositoryFacade
var (
	_ portsrepo.RecipeRepositoryFacade = (*PgxRecipeRepository)(nil)
	_ portsrepo.TransactionManager     = (*PgxRecipeRepository)(nil)
)

const recipeColumns = `recipe_id, user_id, title, description, image_url, favorite, time, source_url,
	servings, portion_size, created_at, last_updated_at`

// SaveRecipe inserts the recipe and every child it carries in one transaction.
func (r *PgxRecipeRepository) SaveRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	var saved *domain.Recipe
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO recipes (user_id, title, description, image_url, favorite, time, source_url,
				servings, portion_size, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING ` + recipeColumns
		rows, err := tx.Query(ctx, query,
			recipe.UserID,
			recipe.Title,
			recipe.Description,
			recipe.ImageURL,
			recipe.Favorite,
			recipe.Time,
			recipe.SourceURL,
			recipe.Servings,
			recipe.PortionSize,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save recipe", err)
		}
		if saved, err = collectOne[domain.Recipe](rows, "recipe"); err != nil {
			return err
		}

		// Point the children at the generated id before inserting them.
		saved.Ingredients = recipe.Ingredients
		saved.NutritionalValues = recipe.NutritionalValues
		saved.Steps = recipe.Steps
		saved.Tools = recipe.Tools
		saved.Tags = recipe.Tags
		saved.LinkChildren()

		if saved.Ingredients, err = r.children.ingredients.saveAllInTx(ctx, tx, saved.Ingredients); err != nil {
			return err
		}
		if saved.NutritionalValues, err = r.children.nutritionalValues.saveAllInTx(ctx, tx, saved.NutritionalValues); err != nil {
			return err
		}
		if saved.Steps, err = r.children.steps.saveAllInTx(ctx, tx, saved.Steps); err != nil {
			return err
		}
		if saved.Tools, err = r.children.tools.saveAllInTx(ctx, tx, saved.Tools); err != nil {
			return err
		}
		saved.Tags, err = r.children.tags.saveAllInTx(ctx, tx, saved.Tags)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindRecipeHeaderByID loads only the recipe row, without child collections.
func (r *PgxRecipeRepository) FindRecipeHeaderByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recipe", err)
	}
	return collectOne[domain.Recipe](rows, "recipe")
}

// FindRecipeByID loads the recipe and all five child collections.
func (r *PgxRecipeRepository) FindRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	recipe, err := r.FindRecipeHeaderByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.Ingredients, err = r.children.ingredients.listByRecipe(ctx, r.Pool, recipeID); err != nil {
		return nil, err
	}
	if recipe.NutritionalValues, err = r.children.nutritionalValues.listByRecipe(ctx, r.Pool, recipeID); err != nil {
		return nil, err
	}
	if recipe.Steps, err = r.children.steps.listByRecipe(ctx, r.Pool, recipeID); err != nil {
		return nil, err
	}
	if recipe.Tools, err = r.children.tools.listByRecipe(ctx, r.Pool, recipeID); err != nil {
		return nil, err
	}
	if recipe.Tags, err = r.children.tags.listByRecipe(ctx, r.Pool, recipeID); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *PgxRecipeRepository) ListRecipesByUserID(ctx context.Context, userID int64, favoritesOnly bool) ([]domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE user_id = $1`
	if favoritesOnly {
		query += ` AND favorite = true`
	}
	query += ` ORDER BY title, recipe_id`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recipes", err)
	}
	return collectAll[domain.Recipe](rows, "recipe")
}

func (r *PgxRecipeRepository) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $1, description = $2, image_url = $3, favorite = $4, time = $5, source_url = $6,
			servings = $7, portion_size = $8, last_updated_at = NOW()
		WHERE recipe_id = $9;
	`
	result, err := r.Pool.Exec(ctx, query,
		recipe.Title,
		recipe.Description,
		recipe.ImageURL,
		recipe.Favorite,
		recipe.Time,
		recipe.SourceURL,
		recipe.Servings,
		recipe.PortionSize,
		recipe.RecipeID,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update recipe %d", recipe.RecipeID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recipe not found")
	}
	return nil
}

// DeleteRecipe removes all children and then the recipe in one transaction.
func (r *PgxRecipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cascades := []func() error{
			func() error { return r.children.ingredients.deleteByRecipeInTx(ctx, tx, recipeID) },
			func() error { return r.children.nutritionalValues.deleteByRecipeInTx(ctx, tx, recipeID) },
			func() error { return r.children.steps.deleteByRecipeInTx(ctx, tx, recipeID) },
			func() error { return r.children.tools.deleteByRecipeInTx(ctx, tx, recipeID) },
			func() error { return r.children.tags.deleteByRecipeInTx(ctx, tx, recipeID) },
		}
		for _, cascade := range cascades {
			if err := cascade(); err != nil {
				return err
			}
		}

		result, err := tx.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, recipeID)
		if err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to delete recipe %d", recipeID), err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("recipe not found")
		}
		return nil
	})
}
