package commands

import (
	"context"

	"turfbook/internal/domain/booking"
)

// PaymentGateway opens an order at the external payment provider. The core never retries it.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount booking.Money, receiptRef string) (booking.OrderID, error)
}

type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, body []byte, messageID string) error
}
