package api

import (
	"net/http"

	reqdto "turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase"
	"turfbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	slots commands.SlotCommands
}

func NewVenueHandler(slots commands.SlotCommands) *VenueHandler {
	return &VenueHandler{slots: slots}
}

// @Summary Reconcile venue slots
// @Description Insert missing hourly slots for the window and drop unbooked slots outside opening hours
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.ReconcileSlotsRequest true "Window to reconcile"
// @Success 200 {object} resdto.ReconcileSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/venues/{id}/slots/reconcile [post]
func (h *VenueHandler) ReconcileSlots(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, usecase.ErrInvalidCredentials, nil)
		return
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID format", nil)
		return
	}

	var req reqdto.ReconcileSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	cmd, err := req.ToCommand(venueID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reconciliation window", nil)
		return
	}

	result, err := h.slots.Reconcile(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}
