//go:build unit || e2e

package builder

import (
	"time"

	"turfbook/internal/domain/booking"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID          uuid.UUID
	PayerID     uuid.UUID
	VenueID     uuid.UUID
	SlotID      uuid.UUID
	Status      booking.Status
	OrderID     string
	PaymentID   *string
	AmountMinor int64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:          uuid.New(),
		PayerID:     uuid.New(),
		VenueID:     uuid.New(),
		SlotID:      uuid.New(),
		Status:      booking.StatusPending,
		OrderID:     "order_" + uuid.NewString()[:8],
		AmountMinor: 50000,
		Currency:    "THB",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithPayerID(id uuid.UUID) *BookingBuilder {
	b.PayerID = id
	return b
}

func (b *BookingBuilder) WithVenueID(id uuid.UUID) *BookingBuilder {
	b.VenueID = id
	return b
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithOrderID(id string) *BookingBuilder {
	b.OrderID = id
	return b
}

func (b *BookingBuilder) WithPaymentID(id string) *BookingBuilder {
	b.PaymentID = &id
	return b
}

func (b *BookingBuilder) WithAmount(minor int64, currency string) *BookingBuilder {
	b.AmountMinor = minor
	b.Currency = currency
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

func (b *BookingBuilder) AsConfirmed(paymentID string) *BookingBuilder {
	b.Status = booking.StatusConfirmed
	b.PaymentID = &paymentID
	return b
}

func (b *BookingBuilder) AsFailed() *BookingBuilder {
	b.Status = booking.StatusFailed
	return b
}

// BuildPending goes through the domain constructor, so ID and timestamps come from it.
func (b *BookingBuilder) BuildPending(clk clock.Clock) (*booking.Booking, error) {
	price, err := booking.NewMoney(b.AmountMinor, b.Currency)
	if err != nil {
		return nil, err
	}
	return booking.NewPending(clk, b.PayerID, b.VenueID, b.SlotID, booking.OrderID(b.OrderID), price)
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	var pid *booking.PaymentID
	if b.PaymentID != nil {
		p := booking.PaymentID(*b.PaymentID)
		pid = &p
	}
	price, _ := booking.NewMoney(b.AmountMinor, b.Currency)
	return booking.ReconstructBooking(b.ID, b.PayerID, b.VenueID, b.SlotID, b.Status,
		booking.OrderID(b.OrderID), pid, price, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	paymentID := pgtype.Text{}
	if b.PaymentID != nil {
		paymentID = pgtype.Text{String: *b.PaymentID, Valid: true}
	}
	return sqlc.Bookings{
		ID:          b.ID,
		PayerID:     b.PayerID,
		VenueID:     b.VenueID,
		SlotID:      b.SlotID,
		Status:      b.Status.String(),
		OrderID:     b.OrderID,
		PaymentID:   paymentID,
		AmountMinor: b.AmountMinor,
		Currency:    b.Currency,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	starts := b.CreatedAt.Add(24 * time.Hour)
	ends := starts.Add(time.Hour)
	return &queries.BookingView{
		ID:          b.ID,
		PayerID:     b.PayerID,
		VenueID:     b.VenueID,
		VenueName:   "Arena Five",
		SlotID:      b.SlotID,
		StartsAt:    &starts,
		EndsAt:      &ends,
		Status:      b.Status.String(),
		OrderID:     b.OrderID,
		PaymentID:   b.PaymentID,
		AmountMinor: b.AmountMinor,
		Currency:    b.Currency,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
