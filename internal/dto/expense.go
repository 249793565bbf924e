package dto

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRequest is the body accepted for creating or updating an expense.
type ExpenseRequest struct {
	Name   string          `json:"name" binding:"required,max=255"`
	Amount decimal.Decimal `json:"amount"`
	Date   *Date           `json:"date" binding:"required"`
}

// ToDomain converts the request into an unsaved expense.
func (r ExpenseRequest) ToDomain() domain.Expense {
	e := domain.Expense{
		Name:   r.Name,
		Amount: r.Amount,
	}
	if r.Date != nil {
		e.Date = r.Date.Time
	}
	return e
}

// ExpenseResponse is the wire shape of an expense.
type ExpenseResponse struct {
	ExpenseID int64           `json:"expenseId"`
	JourneyID int64           `json:"journeyId"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: e.ExpenseID,
		JourneyID: e.JourneyID,
		Name:      e.Name,
		Amount:    e.Amount,
		Date:      NewDate(e.Date),
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to a slice of ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
