package shared

import (
	"context"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/slot"
	sqlc "turfbook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingLedger
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	SlotsInRange(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]slot.Existing, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	ApprovedVenueIDs(ctx context.Context) ([]uuid.UUID, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// SlotRepository is the only writer of slots.is_booked.
type SlotRepository interface {
	IsAvailable(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error)
	// MarkOccupied flips is_booked false -> true and reports whether this call won.
	MarkOccupied(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error)
	MarkAvailable(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) error
	InsertMissing(ctx context.Context, tx sqlc.DBTX, venueID uuid.UUID, windows []slot.Window) (int64, error)
	DeleteUnreferenced(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type BookingLedger interface {
	CreatePending(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByOrder(ctx context.Context, tx sqlc.DBTX, orderID booking.OrderID) ([]*booking.Booking, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	TransitionToConfirmed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID booking.PaymentID, at time.Time) error
	TransitionToFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID *booking.PaymentID, at time.Time) error
	FailPendingByOrder(ctx context.Context, tx sqlc.DBTX, orderID booking.OrderID, at time.Time) ([]uuid.UUID, error)
	FailStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore, at time.Time, limit int32) ([]ReapedBooking, error)
	AttachPaymentRef(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID booking.PaymentID, at time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, orderID booking.OrderID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}
