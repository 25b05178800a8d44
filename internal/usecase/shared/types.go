package shared

import (
	"time"

	"turfbook/internal/domain/slot"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query read models.

type SlotSnapshot struct {
	ID      uuid.UUID
	VenueID uuid.UUID
	Window  slot.Window
	Booked  bool
}

type VenueSnapshot struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	PricePerHourMinor int64
	Currency          string
	OpeningHour       int
	ClosingHour       int
	Approved          bool
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	Approved bool
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *string
	ExpiresAt     time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// ReapedBooking is a booking the reaper moved from PENDING to FAILED.
type ReapedBooking struct {
	ID      uuid.UUID
	PayerID uuid.UUID
	SlotID  uuid.UUID
	OrderID string
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
)
