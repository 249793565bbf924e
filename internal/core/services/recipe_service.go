package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/dto"
)

type recipeService struct {
	BaseService
	recipeRepo portsrepo.RecipeRepositoryFacade
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipeRepo portsrepo.RecipeRepositoryFacade) portssvc.RecipeSvcFacade {
	return &recipeService{recipeRepo: recipeRepo}
}

var _ portssvc.RecipeSvcFacade = (*recipeService)(nil)

func (s *recipeService) CreateRecipe(ctx context.Context, userID int64, req dto.CreateRecipeRequest) (*domain.Recipe, error) {
	recipe := req.ToDomain()
	recipe.UserID = userID

	saved, err := s.recipeRepo.SaveRecipe(ctx, recipe)
	if err != nil {
		s.LogError(ctx, err, "Failed to save recipe", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Recipe created",
		slog.Int64("recipe_id", saved.RecipeID),
		slog.Int("ingredients", len(saved.Ingredients)),
		slog.Int("steps", len(saved.Steps)))
	return saved, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	return s.recipeRepo.FindRecipeByID(ctx, recipeID)
}

func (s *recipeService) ListRecipesByUser(ctx context.Context, userID int64, favoritesOnly bool) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepo.ListRecipesByUserID(ctx, userID, favoritesOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recipes", slog.Int64("user_id", userID))
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID int64, req dto.UpdateRecipeRequest) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	recipe.ApplyUpdate(req.ToDomain())

	if err := s.recipeRepo.UpdateRecipe(ctx, *recipe); err != nil {
		s.LogError(ctx, err, "Failed to update recipe", slog.Int64("recipe_id", recipeID))
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	if err := s.recipeRepo.DeleteRecipe(ctx, recipeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete recipe", slog.Int64("recipe_id", recipeID))
		}
		return err
	}
	s.LogInfo(ctx, "Recipe deleted", slog.Int64("recipe_id", recipeID))
	return nil
}

// AuthorizeRecipe checks that userID owns the recipe. The returned recipe has no collections loaded.
func (s *recipeService) AuthorizeRecipe(ctx context.Context, recipeID int64, userID int64) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.FindRecipeHeaderByID(ctx, recipeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load recipe for authorization", slog.Int64("recipe_id", recipeID))
		}
		return nil, err
	}
	if !recipe.IsOwnedBy(userID) {
		s.LogDebug(ctx, "User does not own recipe",
			slog.Int64("recipe_id", recipeID),
			slog.Int64("user_id", userID))
		return nil, apperrors.ErrForbidden
	}
	return recipe, nil
}
