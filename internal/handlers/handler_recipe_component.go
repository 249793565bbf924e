package handlers

import (
	"log/slog"
	"net/http"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/barrique/barrique_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// componentHandler serves the CRUD routes of one recipe child collection.
// R is the request body bound for create and update.
type componentHandler[T any, PT domain.RecipeComponent[T], R dto.ComponentRequest[T]] struct {
	kind             domain.ComponentKind
	componentService portssvc.RecipeComponentSvc[T]
	recipeService    portssvc.RecipeAuthorizerSvc
	userService      portssvc.UserReaderSvc
}

// RegisterRecipeComponentRoutes mounts /recipe/:recipeId/{ingredient,nutrition,step,tool,tag}.
func RegisterRecipeComponentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerComponentRoutes[domain.Ingredient, *domain.Ingredient, dto.IngredientRequest](rg, services.User, services.Recipe, services.Ingredient)
	registerComponentRoutes[domain.NutritionalValue, *domain.NutritionalValue, dto.NutritionalValueRequest](rg, services.User, services.Recipe, services.NutritionalValue)
	registerComponentRoutes[domain.RecipeStep, *domain.RecipeStep, dto.RecipeStepRequest](rg, services.User, services.Recipe, services.Step)
	registerComponentRoutes[domain.Tool, *domain.Tool, dto.ToolRequest](rg, services.User, services.Recipe, services.Tool)
	registerComponentRoutes[domain.Tag, *domain.Tag, dto.TagRequest](rg, services.User, services.Recipe, services.Tag)
}

func registerComponentRoutes[T any, PT domain.RecipeComponent[T], R dto.ComponentRequest[T]](
	rg *gin.RouterGroup,
	userService portssvc.UserReaderSvc,
	recipeService portssvc.RecipeAuthorizerSvc,
	componentService portssvc.RecipeComponentSvc[T],
) {
	h := &componentHandler[T, PT, R]{
		kind:             PT(new(T)).Kind(),
		componentService: componentService,
		recipeService:    recipeService,
		userService:      userService,
	}

	components := rg.Group("/recipe/:recipeId/" + string(h.kind))
	{
		components.GET("", h.list)
		components.POST("", h.create)
		components.GET("/:componentId", h.get)
		components.PUT("/:componentId", h.update)
		components.DELETE("/:componentId", h.delete)
	}
}

// load fetches the path component and checks it belongs to recipe.
func (h *componentHandler[T, PT, R]) load(c *gin.Context, recipe *domain.Recipe) (*T, bool) {
	id, ok := parseIDParam(c, "componentId")
	if !ok {
		return nil, false
	}

	item, err := h.componentService.GetComponentByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "get "+string(h.kind))
		return nil, false
	}
	if PT(item).GetRecipeID() != recipe.RecipeID {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Component belongs to another recipe",
			slog.String("kind", string(h.kind)),
			slog.Int64("component_id", id),
			slog.Int64("recipe_id", recipe.RecipeID))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: string(h.kind) + " not found"})
		return nil, false
	}
	return item, true
}

// list godoc
// @Summary List the children of a recipe
// @Description component is one of ingredient, nutrition, step, tool, tag.
// @Tags recipe-components
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param component path string true "Component kind"
// @Success 200 {array} object
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId}/{component} [get]
func (h *componentHandler[T, PT, R]) list(c *gin.Context) {
	recipe, userID, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}

	items, err := h.componentService.ListComponentsByRecipe(c.Request.Context(), recipe.RecipeID, userID)
	if err != nil {
		respondWithError(c, err, "list "+string(h.kind))
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// get godoc
// @Summary Get a recipe child
// @Tags recipe-components
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param component path string true "Component kind"
// @Param componentId path int true "Component ID"
// @Success 200 {object} object
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId}/{component}/{componentId} [get]
func (h *componentHandler[T, PT, R]) get(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}
	item, ok := h.load(c, recipe)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

// create godoc
// @Summary Add a child to a recipe
// @Tags recipe-components
// @Accept json
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param component path string true "Component kind"
// @Success 201 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId}/{component} [post]
func (h *componentHandler[T, PT, R]) create(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.componentService.CreateComponent(c.Request.Context(), recipe.RecipeID, req.ToDomain())
	if err != nil {
		respondWithError(c, err, "create "+string(h.kind))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// update godoc
// @Summary Update a recipe child
// @Tags recipe-components
// @Accept json
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param component path string true "Component kind"
// @Param componentId path int true "Component ID"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId}/{component}/{componentId} [put]
func (h *componentHandler[T, PT, R]) update(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}
	item, ok := h.load(c, recipe)
	if !ok {
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.componentService.UpdateComponent(c.Request.Context(), PT(item).GetID(), req.ToDomain())
	if err != nil {
		respondWithError(c, err, "update "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// delete godoc
// @Summary Delete a recipe child
// @Tags recipe-components
// @Param recipeId path int true "Recipe ID"
// @Param component path string true "Component kind"
// @Param componentId path int true "Component ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId}/{component}/{componentId} [delete]
func (h *componentHandler[T, PT, R]) delete(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}
	item, ok := h.load(c, recipe)
	if !ok {
		return
	}

	deleted, err := h.componentService.DeleteComponent(c.Request.Context(), PT(item).GetID())
	if err != nil {
		respondWithError(c, err, "delete "+string(h.kind))
		return
	}
	if !deleted {
		respondWithError(c, apperrors.NewNotFoundError(string(h.kind)+" not found"), "delete "+string(h.kind))
		return
	}
	c.Status(http.StatusNoContent)
}
