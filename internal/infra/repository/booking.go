package repository

import (
	"context"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/infra/repository/converter"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreatePendingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePendingBookingParams) (sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	ListBookingsByOrderID(ctx context.Context, db sqlc.DBTX, orderID string) ([]sqlc.Bookings, error)
	ConfirmPendingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmPendingBookingParams) (int64, error)
	FailPendingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.FailPendingBookingParams) (int64, error)
	FailPendingBookingsByOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.FailPendingBookingsByOrderParams) ([]uuid.UUID, error)
	FailStalePendingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FailStalePendingBookingsParams) ([]sqlc.FailStalePendingBookingsRow, error)
	AttachPaymentToFailedBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachPaymentToFailedBookingParams) (int64, error)
}

// BookingRepository is the booking ledger. Every status change is a guarded UPDATE on
// status = 'PENDING'; zero affected rows is reported as NOT_FOUND or INVALID_STATE.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) CreatePending(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	_, err := r.queries.CreatePendingBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err == nil {
		return nil
	}
	if !pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("failed to create pending booking", err)
	}

	// the INSERT ... SELECT matched no free slot: tell a missing slot from an occupied one
	if _, lookupErr := r.queries.GetSlotByID(ctx, tx, b.SlotID()); lookupErr != nil {
		if pgconv.IsNoRows(lookupErr) {
			return infra.WrapRepoErr("slot not found", lookupErr, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to read slot", lookupErr)
	}
	return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
}

func (r *BookingRepository) FindByOrder(ctx context.Context, tx sqlc.DBTX, orderID booking.OrderID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByOrderID(ctx, tx, orderID.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by order", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, convErr := converter.BookingFromRow(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("corrupt booking row", convErr)
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) TransitionToConfirmed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID booking.PaymentID, at time.Time) error {
	affected, err := r.queries.ConfirmPendingBooking(ctx, tx, sqlc.ConfirmPendingBookingParams{
		ID:        id,
		PaymentID: pgconv.StringToPgtype(paymentID.String()),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking", err)
	}
	if affected == 0 {
		return r.missedTransition(ctx, tx, id)
	}
	return nil
}

func (r *BookingRepository) TransitionToFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID *booking.PaymentID, at time.Time) error {
	affected, err := r.queries.FailPendingBooking(ctx, tx, sqlc.FailPendingBookingParams{
		ID:        id,
		PaymentID: converter.PaymentIDToPgtype(paymentID),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to fail booking", err)
	}
	if affected == 0 {
		return r.missedTransition(ctx, tx, id)
	}
	return nil
}

func (r *BookingRepository) FailPendingByOrder(ctx context.Context, tx sqlc.DBTX, orderID booking.OrderID, at time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.FailPendingBookingsByOrder(ctx, tx, sqlc.FailPendingBookingsByOrderParams{
		OrderID:   orderID.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fail bookings by order", err)
	}
	return ids, nil
}

// FailStalePending never touches slots: Initiate did not flip occupancy, so there is nothing to release.
func (r *BookingRepository) FailStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore, at time.Time, limit int32) ([]shared.ReapedBooking, error) {
	rows, err := r.queries.FailStalePendingBookings(ctx, tx, sqlc.FailStalePendingBookingsParams{
		UpdatedAt:     pgconv.TimeToPgtype(at),
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		BatchSize:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fail stale bookings", err)
	}

	out := make([]shared.ReapedBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.ReapedBooking{
			ID:      row.ID,
			PayerID: row.PayerID,
			SlotID:  row.SlotID,
			OrderID: row.OrderID,
		})
	}
	return out, nil
}

func (r *BookingRepository) AttachPaymentRef(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentID booking.PaymentID, at time.Time) error {
	affected, err := r.queries.AttachPaymentToFailedBooking(ctx, tx, sqlc.AttachPaymentToFailedBookingParams{
		ID:        id,
		PaymentID: pgconv.StringToPgtype(paymentID.String()),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment to booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking is not failed or already carries a payment", nil, infra.KindInvalidState)
	}
	return nil
}

func (r *BookingRepository) missedTransition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.GetBookingByID(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to get booking", err)
	}
	return infra.WrapRepoErr("booking is not pending", nil, infra.KindInvalidState)
}
