package request

import (
	"turfbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiateBookingRequest struct {
	SlotIDs []uuid.UUID `json:"slotIds" binding:"required,min=1"`
}

func (r InitiateBookingRequest) ToCommand(idempotencyKey *uuid.UUID) commands.InitiateRequest {
	return commands.InitiateRequest{
		SlotIDs:        r.SlotIDs,
		IdempotencyKey: idempotencyKey,
	}
}

// ConfirmBookingRequest is posted by the client after the gateway redirect.
// A missing signature is not a binding error: it fails verification like a wrong one.
type ConfirmBookingRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

func (r ConfirmBookingRequest) ToCommand() commands.ConfirmRequest {
	return commands.ConfirmRequest{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
	}
}

// PaymentWebhookRequest carries its signature in the X-Payment-Signature header.
type PaymentWebhookRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId"`
}

func (r PaymentWebhookRequest) ToCommand(signature string) commands.ConfirmRequest {
	return commands.ConfirmRequest{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: signature,
	}
}
