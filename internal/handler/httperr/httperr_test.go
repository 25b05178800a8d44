//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot not found", commands.ErrSlotNotFound, http.StatusNotFound},
		{"slot taken", commands.ErrSlotUnavailable, http.StatusConflict},
		{"bad signature", commands.ErrInvalidSignature, http.StatusUnauthorized},
		{"gateway", errs.Mark(errs.Wrap(errors.New("timeout"), "create order"), errs.ErrGateway), http.StatusBadGateway},
		{"empty cart", commands.ErrEmptyCart, http.StatusBadRequest},
		{"not manager", commands.ErrVenueNotManaged, http.StatusForbidden},
		{"key reused", commands.ErrIdempotencyReused, http.StatusUnprocessableEntity},
		{"key pending", commands.ErrIdempotencyPending, http.StatusConflict},
		{"wrapped conflict", errs.Wrap(commands.ErrOrderNotConfirmed, "confirm"), http.StatusConflict},
		{"rate limited", errs.ErrRateLimited, http.StatusTooManyRequests},
		{"unknown", errors.New("pool closed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestClassify_PaymentWithoutSlotIsDistinct(t *testing.T) {
	initStatus, initMsg := httperr.Classify(commands.ErrSlotUnavailable)
	confirmStatus, confirmMsg := httperr.Classify(commands.ErrOrderNotConfirmed)

	assert.Equal(t, http.StatusConflict, initStatus)
	assert.Equal(t, http.StatusConflict, confirmStatus)
	assert.Equal(t, "Slot already booked by another transaction", initMsg)
	assert.Equal(t, "Payment received but slot unavailable", confirmMsg)
}

func TestAbort_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errors.New("dial tcp 10.0.0.3:5432: connection refused"), nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.NotContains(t, w.Body.String(), "5432")
	assert.Len(t, c.Errors, 1)
}
