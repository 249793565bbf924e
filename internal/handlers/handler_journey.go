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

// journeyHandler handles HTTP requests related to journeys.
type journeyHandler struct {
	journeyService portssvc.JourneySvcFacade
	userService    portssvc.UserReaderSvc
}

func newJourneyHandler(js portssvc.JourneySvcFacade, us portssvc.UserReaderSvc) *journeyHandler {
	return &journeyHandler{
		journeyService: js,
		userService:    us,
	}
}

// RegisterJourneyRoutes registers the journey routes on an authenticated group.
func RegisterJourneyRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc, journeyService portssvc.JourneySvcFacade) {
	registerValidators()
	h := newJourneyHandler(journeyService, userService)

	journeys := rg.Group("/journey")
	{
		journeys.GET("", h.listJourneys)
		journeys.POST("", h.createJourney)
		journeys.GET("/:journeyId", h.getJourney)
		journeys.PUT("/:journeyId", h.updateJourney)
		journeys.DELETE("/:journeyId", h.deleteJourney)
		journeys.GET("/:journeyId/summary", h.getJourneySummary)
	}
}

// authorizeJourney resolves the caller and the path journey, writing 404 or 403 when
// the journey is absent or owned by someone else.
func authorizeJourney(c *gin.Context, us portssvc.UserReaderSvc, js portssvc.JourneyAuthorizerSvc) (*domain.Journey, int64, bool) {
	userID, ok := currentUserID(c, us)
	if !ok {
		return nil, 0, false
	}
	journeyID, ok := parseIDParam(c, "journeyId")
	if !ok {
		return nil, 0, false
	}

	journey, err := js.AuthorizeJourney(c.Request.Context(), journeyID, userID)
	if err != nil {
		respondWithError(c, err, "load journey")
		return nil, 0, false
	}
	return journey, userID, true
}

// listJourneys godoc
// @Summary List journeys
// @Description Lists the journeys owned by the authenticated user.
// @Tags journeys
// @Produce json
// @Success 200 {array} dto.JourneyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey [get]
func (h *journeyHandler) listJourneys(c *gin.Context) {
	userID, ok := currentUserID(c, h.userService)
	if !ok {
		return
	}

	journeys, err := h.journeyService.ListJourneysByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "list journeys")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJourneyResponse(journeys))
}

// createJourney godoc
// @Summary Create a journey
// @Description Creates a budgeted journey for the authenticated user.
// @Tags journeys
// @Accept json
// @Produce json
// @Param journey body dto.JourneyRequest true "Journey details"
// @Success 201 {object} dto.JourneyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey [post]
func (h *journeyHandler) createJourney(c *gin.Context) {
	userID, ok := currentUserID(c, h.userService)
	if !ok {
		return
	}

	var req dto.JourneyRequest
	if !bindJSON(c, &req) {
		return
	}

	journey, err := h.journeyService.CreateJourney(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "create journey")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journey created", slog.Int64("journey_id", journey.JourneyID))
	c.JSON(http.StatusCreated, dto.ToJourneyResponse(journey))
}

// getJourney godoc
// @Summary Get a journey
// @Description Returns a journey with its expenses.
// @Tags journeys
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Success 200 {object} dto.JourneyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId} [get]
func (h *journeyHandler) getJourney(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	full, err := h.journeyService.GetJourneyByID(c.Request.Context(), journey.JourneyID)
	if err != nil {
		respondWithError(c, err, "get journey")
		return
	}
	c.JSON(http.StatusOK, dto.ToJourneyResponse(full))
}

// updateJourney godoc
// @Summary Update a journey
// @Description Replaces the name, currencies, budget and dates of a journey.
// @Tags journeys
// @Accept json
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Param journey body dto.JourneyRequest true "Journey details"
// @Success 200 {object} dto.JourneyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId} [put]
func (h *journeyHandler) updateJourney(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	var req dto.JourneyRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.journeyService.UpdateJourney(c.Request.Context(), journey.JourneyID, req)
	if err != nil {
		respondWithError(c, err, "update journey")
		return
	}
	c.JSON(http.StatusOK, dto.ToJourneyResponse(updated))
}

// deleteJourney godoc
// @Summary Delete a journey
// @Description Deletes a journey together with all of its expenses.
// @Tags journeys
// @Param journeyId path int true "Journey ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId} [delete]
func (h *journeyHandler) deleteJourney(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	if err := h.journeyService.DeleteJourney(c.Request.Context(), journey.JourneyID); err != nil {
		respondWithError(c, err, "delete journey")
		return
	}
	c.Status(http.StatusNoContent)
}

// getJourneySummary godoc
// @Summary Journey budget summary
// @Description Reports total spent, remaining budget and percentage used.
// @Tags journeys
// @Produce json
// @Param journeyId path int true "Journey ID"
// @Success 200 {object} dto.JourneySummaryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journey/{journeyId}/summary [get]
func (h *journeyHandler) getJourneySummary(c *gin.Context) {
	journey, _, ok := authorizeJourney(c, h.userService, h.journeyService)
	if !ok {
		return
	}

	summary, err := h.journeyService.GetJourneySummary(c.Request.Context(), journey.JourneyID)
	if err != nil {
		respondWithError(c, err, "summarize journey")
		return
	}
	c.JSON(http.StatusOK, dto.ToJourneySummaryResponse(*summary))
}
