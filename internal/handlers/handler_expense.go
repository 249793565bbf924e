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

// expenseHandler handles HTTP requests for the expenses nested under a journey.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	journeyService portssvc.JourneyAuthorizerSvc
	userService    portssvc.UserReaderSvc
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, js portssvc.JourneyAuthorizerSvc, us portssvc.UserReaderSvc) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
		journeyService: js,
		userService:    us,
	}
}

// RegisterExpenseRoutes registers the expense routes on an authenticated group.
func RegisterExpenseRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc, journeyService portssvc.JourneyAuthorizerSvc, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService, journeyService, userService)

	expenses := rg.Group("/journey/:journeyId/expense")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/:expenseId", h.getExpense)
		expenses.PUT("/:expenseId", h.updateExpense)
		expenses.DELETE("/:expenseId", h.deleteExpense)
	}
}

// loadExpense fetches the path expense and checks it belongs to journey.
func (h *expenseHandler) loadExpense(c *gin.Context, journey *domain.Journey) (*domain.Expense, bool) {
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		return nil, false
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		respondWithError(c, err, "get expense")
		return nil, false
	}
	if expense.JourneyID != journey.JourneyID {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Expense belongs to another journey",
			slog.Int64("expense_id", expenseID),
			slog.Int64("journey_id", journey.JourneyID))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
		return nil, false
	}
	return expense, true
}

// listExpenses godoc
// @Summary List expenses of a journey
// @Tags expenses
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/expense [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	journey, userID, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	expenses, err := h.expenseService.GetAllExpensesByJourneyID(c.Request.Context(), journey.JourneyID, userID)
	if err != nil {
		respondWithError(c, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Param expenseId path int true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/expense/{expenseId} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}
	expense, ok := h.loadExpense(c, journey)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// createExpense godoc
// @Summary Add an expense to a journey
// @Tags expenses
// @Accept json
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Param expense body dto.ExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/expense [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), journey.JourneyID, req.ToDomain())
	if err != nil {
		respondWithError(c, err, "create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Replaces the name, amount and date of an expense.
// @Tags expenses
// @Accept json
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Param expenseId path int true "Expense ID"
// @Param expense body dto.ExpenseRequest true "Expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/expense/{expenseId} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}
	expense, ok := h.loadExpense(c, journey)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.expenseService.UpdateExpense(c.Request.Context(), expense.ExpenseID, req.ToDomain())
	if err != nil {
		respondWithError(c, err, "update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param journeyId path int true "Journey ID"
// @Param expenseId path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/expense/{expenseId} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}
	expense, ok := h.loadExpense(c, journey)
	if !ok {
		return
	}

	deleted, err := h.expenseService.DeleteExpense(c.Request.Context(), expense.ExpenseID)
	if err != nil {
		respondWithError(c, err, "delete expense")
		return
	}
	if !deleted {
		respondWithError(c, apperrors.NewNotFoundError("expense not found"), "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

