package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is what a payer polls after leaving the gateway.
// Slot times are nil once reconciliation has removed the slot row.
type BookingView struct {
	ID          uuid.UUID  `json:"id"`
	PayerID     uuid.UUID  `json:"payer_id"`
	VenueID     uuid.UUID  `json:"venue_id"`
	VenueName   string     `json:"venue_name"`
	SlotID      uuid.UUID  `json:"slot_id"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Status      string     `json:"status"`
	OrderID     string     `json:"order_id"`
	PaymentID   *string    `json:"payment_id,omitempty"`
	AmountMinor int64      `json:"amount_minor"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
