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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	journeyRepo portsrepo.JourneyReader
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, journeyRepo portsrepo.JourneyReader) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		journeyRepo: journeyRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, journeyID int64, expense domain.Expense) (*domain.Expense, error) {
	journey, err := s.journeyRepo.FindJourneyByID(ctx, journeyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Expense references a missing journey", slog.Int64("journey_id", journeyID))
			return nil, apperrors.NewIllegalArgumentError(fmt.Sprintf("journey %d does not exist", journeyID))
		}
		return nil, err
	}

	expense.ExpenseID = 0
	journey.AddExpense(&expense)

	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.Int64("journey_id", journeyID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.Int64("expense_id", saved.ExpenseID),
		slog.Int64("journey_id", journeyID))
	return saved, nil
}

func (s *expenseService) GetAllExpensesByJourneyID(ctx context.Context, journeyID int64, userID int64) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByJourneyAndUser(ctx, journeyID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.Int64("journey_id", journeyID),
			slog.Int64("user_id", userID))
		return nil, err
	}
	return expenses, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID int64, data domain.Expense) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	expense.ApplyUpdate(data)

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.Int64("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) (bool, error) {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to load expense for deletion", slog.Int64("expense_id", expenseID))
		return false, err
	}

	// The journey's expense collection is read from the expenses table, so removing the
	// row detaches it.
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		return false, err
	}

	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", expenseID))
	return true, nil
}
