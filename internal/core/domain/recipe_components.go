package domain

import "github.com/shopspring/decimal"

// ComponentKind names a child collection of a recipe.
type ComponentKind string

const (
	KindIngredient       ComponentKind = "ingredient"
	KindNutritionalValue ComponentKind = "nutrition"
	KindStep             ComponentKind = "step"
	KindTool             ComponentKind = "tool"
	KindTag              ComponentKind = "tag"
)

// RecipeComponent is satisfied by pointers to the recipe child types.
// It lets services and repositories handle all five collections with one implementation.
type RecipeComponent[T any] interface {
	*T
	Kind() ComponentKind
	GetID() int64
	GetRecipeID() int64
	SetRecipeID(recipeID int64)
	// ApplyUpdate copies payload fields only; id and recipe linkage are preserved.
	ApplyUpdate(other T)
}

// Ingredient is one entry of a recipe's ingredient list.
type Ingredient struct {
	IngredientID int64           `json:"ingredientId" db:"ingredient_id"`
	RecipeID     int64           `json:"recipeId" db:"recipe_id"`
	Name         string          `json:"name" db:"name"`
	Quantity     decimal.Decimal `json:"quantity" db:"quantity"`
	Unit         string          `json:"unit" db:"unit"`
}

func (i *Ingredient) Kind() ComponentKind  { return KindIngredient }
func (i *Ingredient) GetID() int64         { return i.IngredientID }
func (i *Ingredient) GetRecipeID() int64   { return i.RecipeID }
func (i *Ingredient) SetRecipeID(id int64) { i.RecipeID = id }
func (i *Ingredient) ApplyUpdate(other Ingredient) {
	i.Name = other.Name
	i.Quantity = other.Quantity
	i.Unit = other.Unit
}

// NutritionalValue is a single nutrient line, e.g. "protein 12 g".
type NutritionalValue struct {
	NutritionalValueID int64           `json:"nutritionalValueId" db:"nutritional_value_id"`
	RecipeID           int64           `json:"recipeId" db:"recipe_id"`
	Name               string          `json:"name" db:"name"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Unit               string          `json:"unit" db:"unit"`
}

func (n *NutritionalValue) Kind() ComponentKind  { return KindNutritionalValue }
func (n *NutritionalValue) GetID() int64         { return n.NutritionalValueID }
func (n *NutritionalValue) GetRecipeID() int64   { return n.RecipeID }
func (n *NutritionalValue) SetRecipeID(id int64) { n.RecipeID = id }
func (n *NutritionalValue) ApplyUpdate(other NutritionalValue) {
	n.Name = other.Name
	n.Amount = other.Amount
	n.Unit = other.Unit
}

// RecipeStep is one instruction; StepNumber orders the steps.
type RecipeStep struct {
	StepID          int64  `json:"stepId" db:"step_id"`
	RecipeID        int64  `json:"recipeId" db:"recipe_id"`
	StepDescription string `json:"stepDescription" db:"step_description"`
	StepNumber      int    `json:"stepNumber" db:"step_number"`
}

func (s *RecipeStep) Kind() ComponentKind  { return KindStep }
func (s *RecipeStep) GetID() int64         { return s.StepID }
func (s *RecipeStep) GetRecipeID() int64   { return s.RecipeID }
func (s *RecipeStep) SetRecipeID(id int64) { s.RecipeID = id }
func (s *RecipeStep) ApplyUpdate(other RecipeStep) {
	s.StepDescription = other.StepDescription
	s.StepNumber = other.StepNumber
}

// Tool is a piece of kitchen equipment the recipe needs.
type Tool struct {
	ToolID   int64  `json:"toolId" db:"tool_id"`
	RecipeID int64  `json:"recipeId" db:"recipe_id"`
	Name     string `json:"name" db:"name"`
}

func (t *Tool) Kind() ComponentKind  { return KindTool }
func (t *Tool) GetID() int64         { return t.ToolID }
func (t *Tool) GetRecipeID() int64   { return t.RecipeID }
func (t *Tool) SetRecipeID(id int64) { t.RecipeID = id }
func (t *Tool) ApplyUpdate(other Tool) {
	t.Name = other.Name
}

// Tag is a free-form label attached to a recipe.
type Tag struct {
	TagID    int64  `json:"tagId" db:"tag_id"`
	RecipeID int64  `json:"recipeId" db:"recipe_id"`
	Name     string `json:"name" db:"name"`
}

func (t *Tag) Kind() ComponentKind  { return KindTag }
func (t *Tag) GetID() int64         { return t.TagID }
func (t *Tag) GetRecipeID() int64   { return t.RecipeID }
func (t *Tag) SetRecipeID(id int64) { t.RecipeID = id }
func (t *Tag) ApplyUpdate(other Tag) {
	t.Name = other.Name
}
