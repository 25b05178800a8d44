package api

import (
	"net/http"

	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const SignatureHeader = "X-Payment-Signature"

type PaymentHandler struct {
	cmds commands.ReservationCommands
}

func NewPaymentHandler(cmds commands.ReservationCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment webhook
// @Description Server-to-server payment notification from the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "Hex HMAC-SHA256 of orderId|paymentId"
// @Param request body reqdto.PaymentWebhookRequest true "Payment notification"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	respondConfirm(c, h.cmds, req.ToCommand(c.GetHeader(SignatureHeader)))
}
