package httperr

import (
	"net/http"

	"turfbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err onto the error taxonomy. Only the canned message leaves the process.
func Abort(c *gin.Context, err error, detail any) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

// Idempotency, payment and rate limit marks are checked before the broader classes they overlap with.
func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		return http.StatusUnprocessableEntity, "Idempotency key was used for a different request"
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request is still being processed"
	case errs.Is(err, errs.ErrPaymentNotApplied):
		return http.StatusConflict, "Payment received but slot unavailable"
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, "Slot already booked by another transaction"
	case errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, "Booking is already resolved"
	case errs.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests"
	case errs.Is(err, errs.ErrGateway):
		return http.StatusBadGateway, "Payment gateway unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
