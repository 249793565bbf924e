package services

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetAllExpensesByJourneyID returns the expenses of a journey owned by userID.
	GetAllExpensesByJourneyID(ctx context.Context, journeyID int64, userID int64) ([]domain.Expense, error)

	// GetExpenseByID retrieves a specific expense.
	GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense attaches the expense to the journey and persists it.
	CreateExpense(ctx context.Context, journeyID int64, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense copies name, amount and date onto the stored expense.
	UpdateExpense(ctx context.Context, expenseID int64, data domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes an expense. It reports false if the expense did not exist.
	DeleteExpense(ctx context.Context, expenseID int64) (bool, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
