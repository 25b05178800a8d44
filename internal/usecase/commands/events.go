package commands

import (
	"context"
	"encoding/json"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicBookingPending   = "booking.pending"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingFailed    = "booking.failed"
	TopicBookingExpired   = "booking.expired"

	bookingEventKind = "booking_event"
)

type FailureReason string

const (
	ReasonNone             FailureReason = ""
	ReasonSlotUnavailable  FailureReason = "slot_unavailable"
	ReasonSignatureInvalid FailureReason = "signature_invalid"
	ReasonExpired          FailureReason = "expired"
	// ReasonStorageError marks a slot left PENDING because its transaction failed.
	ReasonStorageError FailureReason = "storage_error"
)

type BookingEvent struct {
	BookingIDs     []uuid.UUID   `json:"booking_ids"`
	OrderID        string        `json:"order_id"`
	PaymentID      string        `json:"payment_id,omitempty"`
	PayerID        uuid.UUID     `json:"payer_id,omitempty"`
	SlotIDs        []uuid.UUID   `json:"slot_ids,omitempty"`
	Status         string        `json:"status"`
	Reason         FailureReason `json:"reason,omitempty"`
	RefundRequired bool          `json:"refund_required"`
	AmountMinor    int64         `json:"amount_minor,omitempty"`
	Currency       string        `json:"currency,omitempty"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, ev BookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), bookingEventKind, topic, payload, ev.OccurredAt)
}

func bookingFailedEvent(b *booking.Booking, paymentID *booking.PaymentID, reason FailureReason, at time.Time) BookingEvent {
	ev := BookingEvent{
		BookingIDs: []uuid.UUID{b.ID()},
		OrderID:    b.OrderID().String(),
		PayerID:    b.PayerID(),
		SlotIDs:    []uuid.UUID{b.SlotID()},
		Status:     booking.StatusFailed.String(),
		Reason:     reason,
		OccurredAt: at,
	}
	if paymentID != nil {
		ev.PaymentID = paymentID.String()
		ev.RefundRequired = true
		ev.AmountMinor = b.Price().Minor()
		ev.Currency = b.Price().Currency()
	}
	return ev
}
