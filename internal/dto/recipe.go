package dto

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
)

// CreateRecipeRequest creates a recipe and, optionally, its child collections in one call.
type CreateRecipeRequest struct {
	UpdateRecipeRequest
	Ingredients       []IngredientRequest       `json:"ingredients" binding:"omitempty,dive"`
	NutritionalValues []NutritionalValueRequest `json:"nutritionalValues" binding:"omitempty,dive"`
	Steps             []RecipeStepRequest       `json:"steps" binding:"omitempty,dive"`
	Tools             []ToolRequest             `json:"tools" binding:"omitempty,dive"`
	Tags              []TagRequest              `json:"tags" binding:"omitempty,dive"`
}

// UpdateRecipeRequest carries the scalar fields of a recipe. Collections are managed
// through their own endpoints.
type UpdateRecipeRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	Favorite    bool   `json:"favorite"`
	Time        string `json:"time" binding:"max=64"`
	SourceURL   string `json:"sourceUrl" binding:"omitempty,url"`
	Servings    int    `json:"servings" binding:"gte=0"`
	PortionSize int    `json:"portionSize" binding:"gte=0"`
}

// ToDomain converts the scalar fields into an unsaved recipe.
func (r UpdateRecipeRequest) ToDomain() domain.Recipe {
	return domain.Recipe{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Favorite:    r.Favorite,
		Time:        r.Time,
		SourceURL:   r.SourceURL,
		Servings:    r.Servings,
		PortionSize: r.PortionSize,
	}
}

// ToDomain converts the request into an unsaved recipe with its children attached
// through the recipe's add helpers.
func (r CreateRecipeRequest) ToDomain() domain.Recipe {
	recipe := r.UpdateRecipeRequest.ToDomain()
	for _, i := range toDomainList[domain.Ingredient](r.Ingredients) {
		recipe.AddIngredient(&i)
	}
	for _, n := range toDomainList[domain.NutritionalValue](r.NutritionalValues) {
		recipe.AddNutritionalValue(&n)
	}
	for _, s := range toDomainList[domain.RecipeStep](r.Steps) {
		recipe.AddStep(&s)
	}
	for _, t := range toDomainList[domain.Tool](r.Tools) {
		recipe.AddTool(&t)
	}
	for _, t := range toDomainList[domain.Tag](r.Tags) {
		recipe.AddTag(&t)
	}
	return recipe
}

// RecipeResponse is the wire shape of a recipe. Collections are omitted in list views.
type RecipeResponse struct {
	RecipeID          int64                     `json:"recipeId"`
	Title             string                    `json:"title"`
	Description       string                    `json:"description"`
	ImageURL          string                    `json:"imageUrl"`
	Favorite          bool                      `json:"favorite"`
	Time              string                    `json:"time"`
	SourceURL         string                    `json:"sourceUrl"`
	Servings          int                       `json:"servings"`
	PortionSize       int                       `json:"portionSize"`
	Ingredients       []domain.Ingredient       `json:"ingredients,omitempty"`
	NutritionalValues []domain.NutritionalValue `json:"nutritionalValues,omitempty"`
	Steps             []domain.RecipeStep       `json:"steps,omitempty"`
	Tools             []domain.Tool             `json:"tools,omitempty"`
	Tags              []domain.Tag              `json:"tags,omitempty"`
}

// ToRecipeResponse converts a domain.Recipe to RecipeResponse DTO
func ToRecipeResponse(r *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		RecipeID:          r.RecipeID,
		Title:             r.Title,
		Description:       r.Description,
		ImageURL:          r.ImageURL,
		Favorite:          r.Favorite,
		Time:              r.Time,
		SourceURL:         r.SourceURL,
		Servings:          r.Servings,
		PortionSize:       r.PortionSize,
		Ingredients:       r.Ingredients,
		NutritionalValues: r.NutritionalValues,
		Steps:             r.Steps,
		Tools:             r.Tools,
		Tags:              r.Tags,
	}
}

// ToListRecipeResponse converts a slice of domain.Recipe to a slice of RecipeResponse DTOs
func ToListRecipeResponse(recipes []domain.Recipe) []RecipeResponse {
	res := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		res[i] = ToRecipeResponse(&recipes[i])
	}
	return res
}

// ListRecipesParams defines query parameters for listing recipes.
type ListRecipesParams struct {
	Favorite bool `form:"favorite"`
}
