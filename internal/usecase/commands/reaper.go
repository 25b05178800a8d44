package commands

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxReapBatches = 100

type ReapResult struct {
	Expired    int
	PurgedKeys int64
}

// ReaperCommands fails bookings whose payment never arrived. Slot occupancy is never
// touched here: a PENDING booking never holds the slot.
type ReaperCommands interface {
	ReapStale(ctx context.Context) (*ReapResult, error)
}

type reaperUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	pendingTTL time.Duration
	batchSize  int32
	logger     *slog.Logger
}

func NewReaperUseCase(uow shared.UnitOfWork, clk clock.Clock, pendingTTL time.Duration, batchSize int32, logger *slog.Logger) ReaperCommands {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &reaperUseCaseImpl{
		uow:        uow,
		clock:      clk,
		pendingTTL: pendingTTL,
		batchSize:  batchSize,
		logger:     logger,
	}
}

func (r *reaperUseCaseImpl) ReapStale(ctx context.Context) (*ReapResult, error) {
	result := &ReapResult{}

	for range maxReapBatches {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		n, err := r.reapBatch(ctx)
		if err != nil {
			return result, err
		}
		result.Expired += n
		if n < int(r.batchSize) {
			break
		}
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		purged, err := tx.Idempotency().DeleteExpired(ctx, tx.DB())
		if err != nil {
			return err
		}
		result.PurgedKeys = purged
		return nil
	})
	if err != nil {
		return result, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if result.Expired > 0 || result.PurgedKeys > 0 {
		r.logger.Info("reaped stale bookings",
			"expired", result.Expired,
			"purged_idempotency_keys", result.PurgedKeys)
	}
	return result, nil
}

func (r *reaperUseCaseImpl) reapBatch(ctx context.Context) (int, error) {
	var reaped int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reaped = 0
		now := r.clock.Now()
		rows, err := tx.Bookings().FailStalePending(ctx, tx.DB(), now.Add(-r.pendingTTL), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, row := range rows {
			err := enqueueEvent(ctx, tx, TopicBookingExpired, BookingEvent{
				BookingIDs: []uuid.UUID{row.ID},
				OrderID:    row.OrderID,
				PayerID:    row.PayerID,
				SlotIDs:    []uuid.UUID{row.SlotID},
				Status:     booking.StatusFailed.String(),
				Reason:     ReasonExpired,
				OccurredAt: now,
			})
			if err != nil {
				return err
			}
		}
		reaped = len(rows)
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reaped, nil
}
