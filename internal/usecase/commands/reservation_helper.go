package commands

import (
	"context"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

func validateCart(slotIDs []uuid.UUID) error {
	if len(slotIDs) == 0 {
		return ErrEmptyCart
	}
	seen := make(map[uuid.UUID]struct{}, len(slotIDs))
	for _, id := range slotIDs {
		if id == uuid.Nil {
			return ErrSlotNotFound
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateSlot
		}
		seen[id] = struct{}{}
	}
	return nil
}

func mapSlotErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrSlotNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrSlotUnavailable
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func (r *reservationUseCaseImpl) findOrder(ctx context.Context, orderID booking.OrderID) ([]*booking.Booking, error) {
	var found []*booking.Booking
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bs, err := tx.Bookings().FindByOrder(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		found = bs
		return nil
	})
	return found, err
}

// failUnverifiedOrder fails every PENDING booking of the order. Errors are logged only:
// the caller answers Unauthorized either way.
func (r *reservationUseCaseImpl) failUnverifiedOrder(ctx context.Context, rawOrderID string) {
	orderID, err := booking.NewOrderID(rawOrderID)
	if err != nil {
		r.logger.Warn("rejected unsigned confirmation without order id")
		return
	}

	var failed []uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		ids, err := tx.Bookings().FailPendingByOrder(ctx, tx.DB(), orderID, now)
		if err != nil {
			return err
		}
		failed = ids
		if len(ids) == 0 {
			return nil
		}
		return enqueueEvent(ctx, tx, TopicBookingFailed, BookingEvent{
			BookingIDs: ids,
			OrderID:    orderID.String(),
			Status:     booking.StatusFailed.String(),
			Reason:     ReasonSignatureInvalid,
			OccurredAt: now,
		})
	})
	if err != nil {
		r.logger.Error("failed to fail bookings after signature mismatch",
			"order_id", orderID.String(),
			"error", err.Error())
		return
	}
	r.logger.Warn("payment signature mismatch",
		"order_id", orderID.String(),
		"failed_bookings", len(failed))
}

// confirmSlot runs the slot CAS and the guarded ledger transition in one transaction.
func (r *reservationUseCaseImpl) confirmSlot(ctx context.Context, b *booking.Booking, paymentID booking.PaymentID) (SlotOutcome, error) {
	var out SlotOutcome
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = SlotOutcome{BookingID: b.ID(), SlotID: b.SlotID()}
		now := r.clock.Now()

		won, err := tx.Slots().MarkOccupied(ctx, tx.DB(), b.SlotID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !won {
			return r.loseRace(ctx, tx, b, paymentID, now, &out)
		}

		err = tx.Bookings().TransitionToConfirmed(ctx, tx.DB(), b.ID(), paymentID, now)
		if err == nil {
			out.Status = booking.StatusConfirmed
			return enqueueEvent(ctx, tx, TopicBookingConfirmed, BookingEvent{
				BookingIDs:  []uuid.UUID{b.ID()},
				OrderID:     b.OrderID().String(),
				PaymentID:   paymentID.String(),
				PayerID:     b.PayerID(),
				SlotIDs:     []uuid.UUID{b.SlotID()},
				Status:      booking.StatusConfirmed.String(),
				AmountMinor: b.Price().Minor(),
				Currency:    b.Price().Currency(),
				OccurredAt:  now,
			})
		}
		if !infra.IsKind(err, infra.KindInvalidState) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// the booking left PENDING after it was read, most likely reaped
		out, err = r.settle(ctx, tx, b.ID(), paymentID, now)
		if err != nil {
			return err
		}
		if out.Status != booking.StatusConfirmed {
			return tx.Slots().MarkAvailable(ctx, tx.DB(), b.SlotID())
		}
		return nil
	})
	return out, err
}

func (r *reservationUseCaseImpl) loseRace(ctx context.Context, tx shared.Tx, b *booking.Booking, paymentID booking.PaymentID, now time.Time, out *SlotOutcome) error {
	err := tx.Bookings().TransitionToFailed(ctx, tx.DB(), b.ID(), &paymentID, now)
	if err != nil {
		if !infra.IsKind(err, infra.KindInvalidState) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		settled, serr := r.settle(ctx, tx, b.ID(), paymentID, now)
		if serr != nil {
			return serr
		}
		*out = settled
		return nil
	}

	out.Status = booking.StatusFailed
	out.Reason = ReasonSlotUnavailable
	out.RefundRequired = true
	r.logger.Warn("payment received but slot unavailable",
		"order_id", b.OrderID().String(),
		"booking_id", b.ID(),
		"slot_id", b.SlotID(),
		"payment_id", paymentID.String())
	return enqueueEvent(ctx, tx, TopicBookingFailed, bookingFailedEvent(b, &paymentID, ReasonSlotUnavailable, now))
}

// settle re-reads a booking that is already terminal and keeps the payment trail on a
// FAILED booking that never saw a payment id.
func (r *reservationUseCaseImpl) settle(ctx context.Context, tx shared.Tx, id uuid.UUID, paymentID booking.PaymentID, now time.Time) (SlotOutcome, error) {
	cur, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return SlotOutcome{}, ErrOrderNotFound
		}
		return SlotOutcome{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r.attachRefundTrail(ctx, tx, cur, paymentID, now)
}

func (r *reservationUseCaseImpl) attachRefundTrail(ctx context.Context, tx shared.Tx, b *booking.Booking, paymentID booking.PaymentID, now time.Time) (SlotOutcome, error) {
	out := settledOutcome(b)
	if b.Status() != booking.StatusFailed || b.PaymentID() != nil {
		return out, nil
	}

	err := tx.Bookings().AttachPaymentRef(ctx, tx.DB(), b.ID(), paymentID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindInvalidState) {
			// another callback attached it first
			out.RefundRequired = true
			out.Reason = ReasonSlotUnavailable
			return out, nil
		}
		return SlotOutcome{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	out.RefundRequired = true
	out.Reason = ReasonExpired
	return out, enqueueEvent(ctx, tx, TopicBookingFailed, bookingFailedEvent(b, &paymentID, ReasonExpired, now))
}

// reportSettled answers for a booking that was terminal when the order was read.
func (r *reservationUseCaseImpl) reportSettled(ctx context.Context, b *booking.Booking, paymentID booking.PaymentID) (SlotOutcome, error) {
	if b.Status() != booking.StatusFailed || b.PaymentID() != nil {
		return settledOutcome(b), nil
	}

	var out SlotOutcome
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = r.attachRefundTrail(ctx, tx, b, paymentID, r.clock.Now())
		return err
	})
	return out, err
}

// settledOutcome reports a terminal booking from its stored state. A FAILED booking holding a
// payment id took money without getting the slot.
func settledOutcome(b *booking.Booking) SlotOutcome {
	out := SlotOutcome{
		BookingID:      b.ID(),
		SlotID:         b.SlotID(),
		Status:         b.Status(),
		RefundRequired: b.RequiresRefund(),
		Replayed:       true,
	}
	if b.RequiresRefund() {
		out.Reason = ReasonSlotUnavailable
	}
	return out
}
