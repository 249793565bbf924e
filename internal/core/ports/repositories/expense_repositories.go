package repositories

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpensesByJourneyAndUser returns the expenses of a journey, restricted to a journey
	// owned by userID. A journey owned by someone else yields an empty list.
	ListExpensesByJourneyAndUser(ctx context.Context, journeyID int64, userID int64) ([]domain.Expense, error)

	// ListExpensesByJourney returns the expenses of a journey ordered by date then ID.
	ListExpensesByJourney(ctx context.Context, journeyID int64) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense and returns it with its generated ID.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense updates name, amount and date of an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
