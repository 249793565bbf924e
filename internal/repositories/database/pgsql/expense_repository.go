package pgsql

import (
	"context"
	"fmt"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool pgxPool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

var FULL_EXPENSE_SELECT_QUERY = `
SELECT
	e.expense_id, e.journey_id, e.name, e.amount, e.expense_date,
	e.created_at, e.last_updated_at
FROM expenses e
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.Expense, error) {
	rows, err := q.Query(ctx, FULL_EXPENSE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	return collectAll[domain.Expense](rows, "expense")
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	query := `
		INSERT INTO expenses (journey_id, name, amount, expense_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING expense_id, journey_id, name, amount, expense_date, created_at, last_updated_at;
	`
	rows, err := r.Pool.Query(ctx, query, expense.JourneyID, expense.Name, expense.Amount, expense.Date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save expense", err)
	}
	return collectOne[domain.Expense](rows, "expense")
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expenses, err := r.getExpenses(ctx, r.Pool, `WHERE e.expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.NewNotFoundError("expense not found")
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) ListExpensesByJourneyAndUser(ctx context.Context, journeyID int64, userID int64) ([]domain.Expense, error) {
	query := `
		JOIN journeys j ON j.journey_id = e.journey_id
		WHERE e.journey_id = $1 AND j.user_id = $2
		ORDER BY e.expense_date, e.expense_id;
	`
	return r.getExpenses(ctx, r.Pool, query, journeyID, userID)
}

func (r *PgxExpenseRepository) ListExpensesByJourney(ctx context.Context, journeyID int64) ([]domain.Expense, error) {
	return r.getExpenses(ctx, r.Pool, `WHERE e.journey_id = $1 ORDER BY e.expense_date, e.expense_id;`, journeyID)
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, expense_date = $3, last_updated_at = NOW()
		WHERE expense_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query, expense.Name, expense.Amount, expense.Date, expense.ExpenseID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update expense %d", expense.ExpenseID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense not found")
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete expense %d", expenseID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense not found")
	}
	return nil
}

// deleteExpensesByJourneyInTx removes every expense of a journey inside the given transaction.
func (r *PgxExpenseRepository) deleteExpensesByJourneyInTx(ctx context.Context, q querier, journeyID int64) error {
	if _, err := q.Exec(ctx, `DELETE FROM expenses WHERE journey_id = $1`, journeyID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete expenses of journey %d", journeyID), err)
	}
	return nil
}
