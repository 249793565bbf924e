package services

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Journey = NewJourneyService(repos.JourneyRepo, repos.ExpenseRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.JourneyRepo)
	container.Recipe = NewRecipeService(repos.RecipeRepo)

	// Recipe children share one generic implementation.
	container.Ingredient = NewRecipeComponentService[domain.Ingredient, *domain.Ingredient](repos.IngredientRepo, repos.RecipeRepo)
	container.NutritionalValue = NewRecipeComponentService[domain.NutritionalValue, *domain.NutritionalValue](repos.NutritionalValueRepo, repos.RecipeRepo)
	container.Step = NewRecipeComponentService[domain.RecipeStep, *domain.RecipeStep](repos.StepRepo, repos.RecipeRepo)
	container.Tool = NewRecipeComponentService[domain.Tool, *domain.Tool](repos.ToolRepo, repos.RecipeRepo)
	container.Tag = NewRecipeComponentService[domain.Tag, *domain.Tag](repos.TagRepo, repos.RecipeRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade                          = (*userService)(nil)
	_ portssvc.JourneySvcFacade                       = (*journeyService)(nil)
	_ portssvc.ExpenseSvcFacade                       = (*expenseService)(nil)
	_ portssvc.RecipeSvcFacade                        = (*recipeService)(nil)
	_ portssvc.RecipeComponentSvc[domain.Ingredient] = (*recipeComponentService[domain.Ingredient, *domain.Ingredient])(nil)
)
