package api

import (
	"net/http"
	"strconv"

	reqdto "turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidIdempotencyKey = errs.Mark(errs.New("invalid idempotency key format"), errs.ErrValidation)

type BookingHandler struct {
	cmds commands.ReservationCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.ReservationCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Initiate booking
// @Description Open a payment order for one or more slots of one venue and create PENDING bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID) for safe retries"
// @Param request body reqdto.InitiateBookingRequest true "Slots to book"
// @Success 201 {object} resdto.InitiateBookingResponse
// @Success 200 {object} resdto.InitiateBookingResponse "Replayed response"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/initiate [post]
func (h *BookingHandler) Initiate(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, usecase.ErrInvalidCredentials, nil)
		return
	}

	idempotencyKey, err := idempotencyKeyFrom(c)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}

	var req reqdto.InitiateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Initiate(c.Request.Context(), actor, req.ToCommand(idempotencyKey))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}

	middleware.SetOrderID(c, result.OrderID.String())
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromInitiateResult(result))
}

// @Summary Confirm booking
// @Description Client callback after payment. Applies the signed result to every booking of the order
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmBookingRequest true "Signed payment result"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "No slot confirmed; detail lists each slot"
// @Failure 500 {object} httperr.Response "Storage failure; detail lists the slots settled so far"
// @Router /api/bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	respondConfirm(c, h.cmds, req.ToCommand())
}

// @Summary Get booking
// @Description Get one of the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, usecase.ErrInvalidCredentials, nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description Newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, usecase.ErrInvalidCredentials, nil)
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	views, next, err := h.q.ListMine(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views, next))
}

// respondConfirm answers 200 while at least one slot confirmed. Otherwise the per-slot
// outcomes, when there are any, travel in the error detail.
func respondConfirm(c *gin.Context, cmds commands.ReservationCommands, req commands.ConfirmRequest) {
	middleware.SetOrderID(c, req.OrderID)
	result, err := cmds.Confirm(c.Request.Context(), req)
	if result != nil {
		middleware.SetSlotOutcome(c, result.ConfirmedCount(), len(result.Slots))
	}
	if err != nil {
		var detail any
		if result != nil {
			detail = resdto.FromConfirmResult(result)
		}
		httperr.Abort(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

func idempotencyKeyFrom(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Wrap(errInvalidIdempotencyKey, err.Error())
	}
	return &key, nil
}
