package services_test

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- MockJourneyRepository ---
type MockJourneyRepository struct {
	mock.Mock
}

func (m *MockJourneyRepository) FindJourneyByID(ctx context.Context, journeyID int64) (*domain.Journey, error) {
	args := m.Called(ctx, journeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journey), args.Error(1)
}

func (m *MockJourneyRepository) ListJourneysByUserID(ctx context.Context, userID int64) ([]domain.Journey, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journey), args.Error(1)
}

func (m *MockJourneyRepository) SaveJourney(ctx context.Context, journey domain.Journey) (*domain.Journey, error) {
	args := m.Called(ctx, journey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journey), args.Error(1)
}

func (m *MockJourneyRepository) UpdateJourney(ctx context.Context, journey domain.Journey) error {
	args := m.Called(ctx, journey)
	return args.Error(0)
}

func (m *MockJourneyRepository) DeleteJourney(ctx context.Context, journeyID int64) error {
	args := m.Called(ctx, journeyID)
	return args.Error(0)
}

var _ portsrepo.JourneyRepositoryFacade = (*MockJourneyRepository)(nil)

// --- MockExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByJourneyAndUser(ctx context.Context, journeyID int64, userID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, journeyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByJourney(ctx context.Context, journeyID int64) ([]domain.Expense, error) {
	args := m.Called(ctx, journeyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- MockRecipeRepository ---
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) FindRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindRecipeHeaderByID(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListRecipesByUserID(ctx context.Context, userID int64, favoritesOnly bool) ([]domain.Recipe, error) {
	args := m.Called(ctx, userID, favoritesOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) SaveRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

var _ portsrepo.RecipeRepositoryFacade = (*MockRecipeRepository)(nil)

// --- MockComponentRepository ---
type MockComponentRepository[T any] struct {
	mock.Mock
}

func (m *MockComponentRepository[T]) SaveComponent(ctx context.Context, item T) (*T, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockComponentRepository[T]) FindComponentByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockComponentRepository[T]) ListComponentsByRecipeAndUser(ctx context.Context, recipeID int64, userID int64) ([]T, error) {
	args := m.Called(ctx, recipeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockComponentRepository[T]) ExistsComponent(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockComponentRepository[T]) UpdateComponent(ctx context.Context, item T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockComponentRepository[T]) DeleteComponent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portsrepo.RecipeComponentRepository[domain.RecipeStep] = (*MockComponentRepository[domain.RecipeStep])(nil)
