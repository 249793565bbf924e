package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
)

// componentTable describes how one recipe child type maps onto its table.
type componentTable[T any] struct {
	name     string // used in error messages
	table    string
	idColumn string
	// columns are the payload columns, excluding the id and recipe_id.
	columns []string
	// values returns the payload values in the same order as columns.
	values  func(item *T) []any
	orderBy string
}

func (t componentTable[T]) selectColumns(alias string) string {
	cols := make([]string, 0, len(t.columns)+2)
	cols = append(cols, alias+"."+t.idColumn, alias+".recipe_id")
	for _, c := range t.columns {
		cols = append(cols, alias+"."+c)
	}
	return strings.Join(cols, ", ")
}

func (t componentTable[T]) returningColumns() string {
	return t.idColumn + ", recipe_id, " + strings.Join(t.columns, ", ")
}

var ingredientTable = componentTable[domain.Ingredient]{
	name:     "ingredient",
	table:    "ingredients",
	idColumn: "ingredient_id",
	columns:  []string{"name", "quantity", "unit"},
	values: func(i *domain.Ingredient) []any {
		return []any{i.Name, i.Quantity, i.Unit}
	},
	orderBy: "ingredient_id",
}

var nutritionalValueTable = componentTable[domain.NutritionalValue]{
	name:     "nutritional value",
	table:    "nutritional_values",
	idColumn: "nutritional_value_id",
	columns:  []string{"name", "amount", "unit"},
	values: func(n *domain.NutritionalValue) []any {
		return []any{n.Name, n.Amount, n.Unit}
	},
	orderBy: "nutritional_value_id",
}

var stepTable = componentTable[domain.RecipeStep]{
	name:     "recipe step",
	table:    "recipe_steps",
	idColumn: "step_id",
	columns:  []string{"step_description", "step_number"},
	values: func(s *domain.RecipeStep) []any {
		return []any{s.StepDescription, s.StepNumber}
	},
	orderBy: "step_number, step_id",
}

var toolTable = componentTable[domain.Tool]{
	name:     "tool",
	table:    "tools",
	idColumn: "tool_id",
	columns:  []string{"name"},
	values: func(t *domain.Tool) []any {
		return []any{t.Name}
	},
	orderBy: "tool_id",
}

var tagTable = componentTable[domain.Tag]{
	name:     "tag",
	table:    "tags",
	idColumn: "tag_id",
	columns:  []string{"name"},
	values: func(t *domain.Tag) []any {
		return []any{t.Name}
	},
	orderBy: "tag_id",
}

// PgxRecipeComponentRepository persists one kind of recipe child.
type PgxRecipeComponentRepository[T any, PT domain.RecipeComponent[T]] struct {
	BaseRepository
	spec componentTable[T]
}

func newPgxRecipeComponentRepository[T any, PT domain.RecipeComponent[T]](pool pgxPool, spec componentTable[T]) *PgxRecipeComponentRepository[T, PT] {
	return &PgxRecipeComponentRepository[T, PT]{
		BaseRepository: BaseRepository{Pool: pool},
		spec:           spec,
	}
}

var (
	_ portsrepo.RecipeComponentRepository[domain.Ingredient]       = (*PgxRecipeComponentRepository[domain.Ingredient, *domain.Ingredient])(nil)
	_ portsrepo.RecipeComponentRepository[domain.NutritionalValue] = (*PgxRecipeComponentRepository[domain.NutritionalValue, *domain.NutritionalValue])(nil)
	_ portsrepo.RecipeComponentRepository[domain.RecipeStep]       = (*PgxRecipeComponentRepository[domain.RecipeStep, *domain.RecipeStep])(nil)
	_ portsrepo.RecipeComponentRepository[domain.Tool]             = (*PgxRecipeComponentRepository[domain.Tool, *domain.Tool])(nil)
	_ portsrepo.RecipeComponentRepository[domain.Tag]              = (*PgxRecipeComponentRepository[domain.Tag, *domain.Tag])(nil)
)

func (r *PgxRecipeComponentRepository[T, PT]) SaveComponent(ctx context.Context, item T) (*T, error) {
	return r.saveWith(ctx, r.Pool, item)
}

func (r *PgxRecipeComponentRepository[T, PT]) saveWith(ctx context.Context, q querier, item T) (*T, error) {
	values := r.spec.values(&item)
	placeholders := make([]string, len(values)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (recipe_id, %s) VALUES (%s) RETURNING %s`,
		r.spec.table, strings.Join(r.spec.columns, ", "), strings.Join(placeholders, ", "), r.spec.returningColumns())

	args := append([]any{PT(&item).GetRecipeID()}, values...)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save "+r.spec.name, err)
	}
	return collectOne[T](rows, r.spec.name)
}

// saveAllInTx inserts every item inside tx and returns them with their generated IDs.
func (r *PgxRecipeComponentRepository[T, PT]) saveAllInTx(ctx context.Context, q querier, items []T) ([]T, error) {
	if len(items) == 0 {
		return items, nil
	}
	saved := make([]T, 0, len(items))
	for _, item := range items {
		s, err := r.saveWith(ctx, q, item)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *s)
	}
	return saved, nil
}

func (r *PgxRecipeComponentRepository[T, PT]) FindComponentByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1`, r.spec.selectColumns("c"), r.spec.table, r.spec.idColumn)
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+r.spec.name, err)
	}
	return collectOne[T](rows, r.spec.name)
}

func (r *PgxRecipeComponentRepository[T, PT]) ListComponentsByRecipeAndUser(ctx context.Context, recipeID int64, userID int64) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s c
		JOIN recipes r ON r.recipe_id = c.recipe_id
		WHERE c.recipe_id = $1 AND r.user_id = $2
		ORDER BY %s`,
		r.spec.selectColumns("c"), r.spec.table, prefixColumns("c", r.spec.orderBy))
	rows, err := r.Pool.Query(ctx, query, recipeID, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list "+r.spec.name+" rows", err)
	}
	return collectAll[T](rows, r.spec.name)
}

// listByRecipe loads all children of a recipe without an ownership check.
func (r *PgxRecipeComponentRepository[T, PT]) listByRecipe(ctx context.Context, q querier, recipeID int64) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.recipe_id = $1 ORDER BY %s`,
		r.spec.selectColumns("c"), r.spec.table, prefixColumns("c", r.spec.orderBy))
	rows, err := q.Query(ctx, query, recipeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list "+r.spec.name+" rows", err)
	}
	return collectAll[T](rows, r.spec.name)
}

func (r *PgxRecipeComponentRepository[T, PT]) ExistsComponent(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, r.spec.table, r.spec.idColumn)
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check "+r.spec.name+" existence", err)
	}
	return exists, nil
}

func (r *PgxRecipeComponentRepository[T, PT]) UpdateComponent(ctx context.Context, item T) error {
	values := r.spec.values(&item)
	sets := make([]string, len(r.spec.columns))
	for i, c := range r.spec.columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		r.spec.table, strings.Join(sets, ", "), r.spec.idColumn, len(values)+1)

	id := PT(&item).GetID()
	result, err := r.Pool.Exec(ctx, query, append(values, id)...)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update %s %d", r.spec.name, id), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(r.spec.name + " not found")
	}
	return nil
}

func (r *PgxRecipeComponentRepository[T, PT]) DeleteComponent(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.spec.table, r.spec.idColumn)
	result, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete %s %d", r.spec.name, id), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(r.spec.name + " not found")
	}
	return nil
}

// deleteByRecipeInTx removes every child of a recipe inside the given transaction.
func (r *PgxRecipeComponentRepository[T, PT]) deleteByRecipeInTx(ctx context.Context, q querier, recipeID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE recipe_id = $1`, r.spec.table)
	if _, err := q.Exec(ctx, query, recipeID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete %s rows of recipe %d", r.spec.name, recipeID), err)
	}
	return nil
}

// prefixColumns qualifies a comma separated ORDER BY list with a table alias.
func prefixColumns(alias, list string) string {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
