package handlers

import (
	"log/slog"
	"net/http"

	"github.com/barrique/barrique_backend/internal/core/domain"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/barrique/barrique_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recipeHandler handles HTTP requests related to recipes.
type recipeHandler struct {
	recipeService portssvc.RecipeSvcFacade
	userService   portssvc.UserReaderSvc
}

func newRecipeHandler(rs portssvc.RecipeSvcFacade, us portssvc.UserReaderSvc) *recipeHandler {
	return &recipeHandler{
		recipeService: rs,
		userService:   us,
	}
}

// RegisterRecipeRoutes registers the recipe routes on an authenticated group.
func RegisterRecipeRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc, recipeService portssvc.RecipeSvcFacade) {
	h := newRecipeHandler(recipeService, userService)

	recipes := rg.Group("/recipe")
	{
		recipes.GET("", h.listRecipes)
		recipes.POST("", h.createRecipe)
		recipes.GET("/:recipeId", h.getRecipe)
		recipes.PUT("/:recipeId", h.updateRecipe)
		recipes.DELETE("/:recipeId", h.deleteRecipe)
	}
}

// authorizeRecipe resolves the caller and the path recipe, writing 404 or 403 when
// the recipe is absent or owned by someone else.
func authorizeRecipe(c *gin.Context, us portssvc.UserReaderSvc, rs portssvc.RecipeAuthorizerSvc) (*domain.Recipe, int64, bool) {
	userID, ok := currentUserID(c, us)
	if !ok {
		return nil, 0, false
	}
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return nil, 0, false
	}

	recipe, err := rs.AuthorizeRecipe(c.Request.Context(), recipeID, userID)
	if err != nil {
		respondWithError(c, err, "load recipe")
		return nil, 0, false
	}
	return recipe, userID, true
}

// listRecipes godoc
// @Summary List recipes
// @Description Lists the recipes owned by the authenticated user.
// @Tags recipes
// @Produce json
// @Param favorite query bool false "Only favorites"
// @Success 200 {array} dto.RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe [get]
func (h *recipeHandler) listRecipes(c *gin.Context) {
	userID, ok := currentUserID(c, h.userService)
	if !ok {
		return
	}

	var params dto.ListRecipesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	recipes, err := h.recipeService.ListRecipesByUser(c.Request.Context(), userID, params.Favorite)
	if err != nil {
		respondWithError(c, err, "list recipes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecipeResponse(recipes))
}

// createRecipe godoc
// @Summary Create a recipe
// @Description Creates a recipe, optionally with its ingredients, nutritional values, steps, tools and tags.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body dto.CreateRecipeRequest true "Recipe details"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe [post]
func (h *recipeHandler) createRecipe(c *gin.Context) {
	userID, ok := currentUserID(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "create recipe")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Recipe created", slog.Int64("recipe_id", recipe.RecipeID))
	c.JSON(http.StatusCreated, dto.ToRecipeResponse(recipe))
}

// getRecipe godoc
// @Summary Get a recipe
// @Description Returns a recipe with all of its child collections.
// @Tags recipes
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId} [get]
func (h *recipeHandler) getRecipe(c *gin.Context) {
	header, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}
	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), header.RecipeID)
	if err != nil {
		respondWithError(c, err, "load recipe")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// updateRecipe godoc
// @Summary Update a recipe
// @Description Replaces the scalar fields of a recipe. Child collections are untouched.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param recipe body dto.UpdateRecipeRequest true "Recipe details"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId} [put]
func (h *recipeHandler) updateRecipe(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}

	var req dto.UpdateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.recipeService.UpdateRecipe(c.Request.Context(), recipe.RecipeID, req)
	if err != nil {
		respondWithError(c, err, "update recipe")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecipeResponse(updated))
}

// deleteRecipe godoc
// @Summary Delete a recipe
// @Description Deletes a recipe and all of its children.
// @Tags recipes
// @Param recipeId path int true "Recipe ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipe/{recipeId} [delete]
func (h *recipeHandler) deleteRecipe(c *gin.Context) {
	recipe, _, ok := authorizeRecipe(c, h.userService, h.recipeService)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), recipe.RecipeID); err != nil {
		respondWithError(c, err, "delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}
