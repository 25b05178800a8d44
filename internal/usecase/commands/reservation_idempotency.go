package commands

import (
	"context"
	"encoding/hex"
	"slices"
	"strings"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const initiateEndpoint = "POST /api/bookings/initiate"

type idempotencyClaim struct {
	key    uuid.UUID
	userID uuid.UUID
}

// claimIdempotencyKey either claims the key for this request or returns the order a
// completed request with the same key and body produced.
func (r *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	key, userID uuid.UUID,
	slotIDs []uuid.UUID,
) (*idempotencyClaim, *InitiateResult, error) {
	hash := requestHash(slotIDs)

	var replayOrder *booking.OrderID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayOrder = nil
		now := r.clock.Now()
		expiresAt := now.Add(idempotencyTTL)

		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, initiateEndpoint, hash, expiresAt)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if inserted {
			return nil
		}

		rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// released between the insert and the read
				return ErrIdempotencyPending
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if rec.ExpiresAt.Before(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, hash, expiresAt)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if claimed {
				return nil
			}
			return ErrIdempotencyPending
		}

		if rec.RequestHash != hash {
			return ErrIdempotencyReused
		}

		switch rec.Status {
		case shared.IdempotencyCompleted:
			if rec.ResultOrderID == nil {
				return errs.New("completed idempotency key has no order")
			}
			orderID := booking.OrderID(*rec.ResultOrderID)
			replayOrder = &orderID
			return nil
		case shared.IdempotencyProcessing:
			return ErrIdempotencyPending
		default:
			return errs.Newf("unknown idempotency status %q", rec.Status)
		}
	})
	if err != nil {
		return nil, nil, err
	}

	if replayOrder != nil {
		replay, err := r.replayOrder(ctx, *replayOrder)
		return nil, replay, err
	}
	return &idempotencyClaim{key: key, userID: userID}, nil, nil
}

func (r *reservationUseCaseImpl) replayOrder(ctx context.Context, orderID booking.OrderID) (*InitiateResult, error) {
	bookings, err := r.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := &InitiateResult{OrderID: orderID, Replayed: true}
	for _, b := range bookings {
		total, err := result.Amount.Add(b.Price())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidState)
		}
		result.Amount = total
		result.BookingIDs = append(result.BookingIDs, b.ID())
	}
	return result, nil
}

func (r *reservationUseCaseImpl) releaseIdempotencyKey(ctx context.Context, claim *idempotencyClaim) {
	err := r.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), claim.key, claim.userID)
	})
	if err != nil {
		r.logger.Warn("failed to release idempotency key",
			"idempotency_key", claim.key,
			"error", err.Error())
	}
}

// requestHash ignores the order slots were listed in.
func requestHash(slotIDs []uuid.UUID) string {
	ids := make([]string, len(slotIDs))
	for i, id := range slotIDs {
		ids[i] = id.String()
	}
	slices.Sort(ids)
	sum := blake2b.Sum256([]byte(strings.Join(ids, ",")))
	return hex.EncodeToString(sum[:])
}
