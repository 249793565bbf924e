package dto

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComponentRequest is implemented by the request bodies of the recipe child collections.
type ComponentRequest[T any] interface {
	ToDomain() T
}

type IngredientRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" binding:"max=32"`
}

func (r IngredientRequest) ToDomain() domain.Ingredient {
	return domain.Ingredient{Name: r.Name, Quantity: r.Quantity, Unit: r.Unit}
}

type NutritionalValueRequest struct {
	Name   string          `json:"name" binding:"required,max=255"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit" binding:"max=32"`
}

func (r NutritionalValueRequest) ToDomain() domain.NutritionalValue {
	return domain.NutritionalValue{Name: r.Name, Amount: r.Amount, Unit: r.Unit}
}

type RecipeStepRequest struct {
	StepDescription string `json:"stepDescription" binding:"required"`
	StepNumber      int    `json:"stepNumber" binding:"gte=0"`
}

func (r RecipeStepRequest) ToDomain() domain.RecipeStep {
	return domain.RecipeStep{StepDescription: r.StepDescription, StepNumber: r.StepNumber}
}

type ToolRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (r ToolRequest) ToDomain() domain.Tool {
	return domain.Tool{Name: r.Name}
}

type TagRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

func (r TagRequest) ToDomain() domain.Tag {
	return domain.Tag{Name: r.Name}
}

var (
	_ ComponentRequest[domain.Ingredient]       = IngredientRequest{}
	_ ComponentRequest[domain.NutritionalValue] = NutritionalValueRequest{}
	_ ComponentRequest[domain.RecipeStep]       = RecipeStepRequest{}
	_ ComponentRequest[domain.Tool]             = ToolRequest{}
	_ ComponentRequest[domain.Tag]              = TagRequest{}
)

func toDomainList[T any, R ComponentRequest[T]](reqs []R) []T {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]T, len(reqs))
	for i, r := range reqs {
		out[i] = r.ToDomain()
	}
	return out
}
