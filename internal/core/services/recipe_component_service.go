package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
)

// recipeComponentService implements the CRUD shape shared by the recipe child collections.
type recipeComponentService[T any, PT domain.RecipeComponent[T]] struct {
	BaseService
	repo       portsrepo.RecipeComponentRepository[T]
	recipeRepo portsrepo.RecipeReader
}

// NewRecipeComponentService creates a service for one recipe child type.
func NewRecipeComponentService[T any, PT domain.RecipeComponent[T]](repo portsrepo.RecipeComponentRepository[T], recipeRepo portsrepo.RecipeReader) portssvc.RecipeComponentSvc[T] {
	return &recipeComponentService[T, PT]{
		repo:       repo,
		recipeRepo: recipeRepo,
	}
}

func (s *recipeComponentService[T, PT]) kind() string {
	var zero T
	return string(PT(&zero).Kind())
}

func (s *recipeComponentService[T, PT]) CreateComponent(ctx context.Context, recipeID int64, item T) (*T, error) {
	if _, err := s.recipeRepo.FindRecipeHeaderByID(ctx, recipeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Component references a missing recipe",
				slog.String("kind", s.kind()),
				slog.Int64("recipe_id", recipeID))
			return nil, apperrors.NewIllegalArgumentError(fmt.Sprintf("recipe %d does not exist", recipeID))
		}
		return nil, err
	}

	PT(&item).SetRecipeID(recipeID)
	saved, err := s.repo.SaveComponent(ctx, item)
	if err != nil {
		s.LogError(ctx, err, "Failed to save recipe component",
			slog.String("kind", s.kind()),
			slog.Int64("recipe_id", recipeID))
		return nil, err
	}

	s.LogInfo(ctx, "Recipe component created",
		slog.String("kind", s.kind()),
		slog.Int64("id", PT(saved).GetID()),
		slog.Int64("recipe_id", recipeID))
	return saved, nil
}

func (s *recipeComponentService[T, PT]) ListComponentsByRecipe(ctx context.Context, recipeID int64, userID int64) ([]T, error) {
	items, err := s.repo.ListComponentsByRecipeAndUser(ctx, recipeID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recipe components",
			slog.String("kind", s.kind()),
			slog.Int64("recipe_id", recipeID))
		return nil, err
	}
	return items, nil
}

func (s *recipeComponentService[T, PT]) GetComponentByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.FindComponentByID(ctx, id)
}

func (s *recipeComponentService[T, PT]) UpdateComponent(ctx context.Context, id int64, data T) (*T, error) {
	item, err := s.repo.FindComponentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	PT(item).ApplyUpdate(data)

	if err := s.repo.UpdateComponent(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update recipe component",
			slog.String("kind", s.kind()),
			slog.Int64("id", id))
		return nil, err
	}
	return item, nil
}

func (s *recipeComponentService[T, PT]) DeleteComponent(ctx context.Context, id int64) (bool, error) {
	exists, err := s.repo.ExistsComponent(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to check recipe component existence",
			slog.String("kind", s.kind()),
			slog.Int64("id", id))
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.DeleteComponent(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to delete recipe component",
			slog.String("kind", s.kind()),
			slog.Int64("id", id))
		return false, err
	}
	return true, nil
}
