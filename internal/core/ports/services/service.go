package services

import "github.com/barrique/barrique_backend/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User             UserSvcFacade
	Journey          JourneySvcFacade
	Expense          ExpenseSvcFacade
	Recipe           RecipeSvcFacade
	Ingredient       RecipeComponentSvc[domain.Ingredient]
	NutritionalValue RecipeComponentSvc[domain.NutritionalValue]
	Step             RecipeComponentSvc[domain.RecipeStep]
	Tool             RecipeComponentSvc[domain.Tool]
	Tag              RecipeComponentSvc[domain.Tag]
}
