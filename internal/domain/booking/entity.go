package booking

import (
	"errors"
	"time"

	"turfbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrMissingReference = errors.New("booking requires payer, venue and slot")
)

// Booking is one reservation attempt for one slot. Several bookings may share an order.
// State changes happen in storage under a PENDING guard; a Booking is a read snapshot.
type Booking struct {
	id        uuid.UUID
	payerID   uuid.UUID
	venueID   uuid.UUID
	slotID    uuid.UUID
	status    Status
	orderID   OrderID
	paymentID *PaymentID
	price     Money
	createdAt time.Time
	updatedAt time.Time
}

func NewPending(clk clock.Clock, payerID, venueID, slotID uuid.UUID, orderID OrderID, price Money) (*Booking, error) {
	if payerID == uuid.Nil || venueID == uuid.Nil || slotID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if orderID == "" {
		return nil, ErrEmptyOrderID
	}
	now := clk.Now()
	return &Booking{
		id:        uuid.New(),
		payerID:   payerID,
		venueID:   venueID,
		slotID:    slotID,
		status:    StatusPending,
		orderID:   orderID,
		price:     price,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, payerID, venueID, slotID uuid.UUID,
	status Status,
	orderID OrderID,
	paymentID *PaymentID,
	price Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		payerID:   payerID,
		venueID:   venueID,
		slotID:    slotID,
		status:    status,
		orderID:   orderID,
		paymentID: paymentID,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// RequiresRefund holds for a FAILED booking that captured a payment.
func (b *Booking) RequiresRefund() bool {
	return b.status == StatusFailed && b.paymentID != nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PayerID() uuid.UUID    { return b.payerID }
func (b *Booking) VenueID() uuid.UUID    { return b.venueID }
func (b *Booking) SlotID() uuid.UUID     { return b.slotID }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) OrderID() OrderID      { return b.orderID }
func (b *Booking) PaymentID() *PaymentID { return b.paymentID }
func (b *Booking) Price() Money          { return b.price }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
