package commands

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/principal"
	"turfbook/internal/domain/venue"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound       = errs.Mark(errs.New("slot not found"), errs.ErrNotFound)
	ErrVenueNotFound      = errs.Mark(errs.New("venue not found"), errs.ErrNotFound)
	ErrOrderNotFound      = errs.Mark(errs.New("no booking for order"), errs.ErrNotFound)
	ErrSlotUnavailable    = errs.Mark(errs.New("slot already booked by another transaction"), errs.ErrConflict)
	ErrOrderNotConfirmed  = errs.Mark(errs.Mark(errs.New("payment received but slot unavailable"), errs.ErrConflict), errs.ErrPaymentNotApplied)
	ErrInvalidSignature   = errs.Mark(errs.New("payment signature is invalid"), errs.ErrUnauthorized)
	ErrNotAuthenticated   = errs.Mark(errs.New("principal is not authenticated"), errs.ErrUnauthorized)
	ErrEmptyCart          = errs.Mark(errs.New("at least one slot is required"), errs.ErrValidation)
	ErrDuplicateSlot      = errs.Mark(errs.New("slot listed more than once"), errs.ErrValidation)
	ErrMixedVenues        = errs.Mark(errs.New("all slots of an order must belong to one venue"), errs.ErrValidation)
	ErrInvalidVenuePrice  = errs.Mark(errs.New("venue price is not configured"), errs.ErrValidation)
	ErrOrderCreateFailed  = errs.Mark(errs.New("payment order could not be created"), errs.ErrGateway)
	ErrIdempotencyPending = errs.Mark(errs.New("request with this idempotency key is still processing"), errs.ErrIdempotencyInProgress)
	ErrIdempotencyReused  = errs.Mark(errs.New("idempotency key was used for a different request"), errs.ErrIdempotencyKeyReused)
)

const idempotencyTTL = 24 * time.Hour

type InitiateRequest struct {
	SlotIDs        []uuid.UUID
	IdempotencyKey *uuid.UUID
}

type InitiateResult struct {
	OrderID    booking.OrderID
	Amount     booking.Money
	BookingIDs []uuid.UUID
	Replayed   bool
}

type ConfirmRequest struct {
	OrderID   string
	PaymentID string
	Signature string
}

// SlotOutcome is the result of Confirm for one booking of the order.
type SlotOutcome struct {
	BookingID      uuid.UUID
	SlotID         uuid.UUID
	Status         booking.Status
	Reason         FailureReason
	RefundRequired bool
	// Replayed is set when the booking was already terminal and nothing was applied.
	Replayed bool
}

type ConfirmResult struct {
	OrderID   booking.OrderID
	PaymentID booking.PaymentID
	Slots     []SlotOutcome
}

func (r *ConfirmResult) ConfirmedCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.Status == booking.StatusConfirmed {
			n++
		}
	}
	return n
}

type ReservationCommands interface {
	Initiate(ctx context.Context, actor principal.Principal, req InitiateRequest) (*InitiateResult, error)
	// Confirm returns a result whenever the order was found, including alongside ErrOrderNotConfirmed
	// and alongside a storage error once any slot of the order was settled.
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	verifier SignatureVerifier
	pricing  booking.PriceCalculator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	verifier SignatureVerifier,
	pricing booking.PriceCalculator,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		verifier: verifier,
		pricing:  pricing,
		clock:    clk,
		logger:   logger,
	}
}

type checkout struct {
	payerID uuid.UUID
	venueID uuid.UUID
	slotIDs []uuid.UUID
	prices  []booking.Money
	total   booking.Money
}

func (r *reservationUseCaseImpl) Initiate(ctx context.Context, actor principal.Principal, req InitiateRequest) (*InitiateResult, error) {
	if err := actor.CanReserve(); err != nil {
		return nil, ErrNotAuthenticated
	}
	if err := validateCart(req.SlotIDs); err != nil {
		return nil, err
	}

	var claim *idempotencyClaim
	if req.IdempotencyKey != nil {
		c, replay, err := r.claimIdempotencyKey(ctx, *req.IdempotencyKey, actor.ID(), req.SlotIDs)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			return replay, nil
		}
		claim = c
	}

	result, err := r.initiate(ctx, actor.ID(), req.SlotIDs, claim)
	if err != nil && claim != nil {
		r.releaseIdempotencyKey(ctx, claim)
	}
	return result, err
}

func (r *reservationUseCaseImpl) initiate(ctx context.Context, payerID uuid.UUID, slotIDs []uuid.UUID, claim *idempotencyClaim) (*InitiateResult, error) {
	co, err := r.precheck(ctx, payerID, slotIDs)
	if err != nil {
		return nil, err
	}

	// the gateway call stays outside any transaction
	orderID, err := r.gateway.CreateOrder(ctx, co.total, uuid.NewString())
	if err != nil {
		r.logger.Warn("payment order creation failed",
			"payer_id", payerID,
			"slots", len(slotIDs),
			"error", err.Error())
		return nil, errs.Mark(errs.Wrap(err, ErrOrderCreateFailed.Error()), errs.ErrGateway)
	}

	var bookingIDs []uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingIDs = bookingIDs[:0]
		now := r.clock.Now()
		for i, slotID := range co.slotIDs {
			b, derr := booking.NewPending(r.clock, co.payerID, co.venueID, slotID, orderID, co.prices[i])
			if derr != nil {
				return errs.Mark(derr, errs.ErrValidation)
			}
			if derr = tx.Bookings().CreatePending(ctx, tx.DB(), b); derr != nil {
				return mapSlotErr(derr)
			}
			bookingIDs = append(bookingIDs, b.ID())
		}

		if claim != nil {
			if derr := tx.Idempotency().MarkCompleted(ctx, tx.DB(), claim.key, claim.userID, orderID); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		return enqueueEvent(ctx, tx, TopicBookingPending, BookingEvent{
			BookingIDs:  bookingIDs,
			OrderID:     orderID.String(),
			PayerID:     co.payerID,
			SlotIDs:     co.slotIDs,
			Status:      booking.StatusPending.String(),
			AmountMinor: co.total.Minor(),
			Currency:    co.total.Currency(),
			OccurredAt:  now,
		})
	})
	if err != nil {
		r.logger.Warn("gateway order left without bookings",
			"order_id", orderID.String(),
			"error", err.Error())
		return nil, err
	}

	return &InitiateResult{
		OrderID:    orderID,
		Amount:     co.total,
		BookingIDs: bookingIDs,
	}, nil
}

// precheck is optimistic: CreatePending and the slot CAS at confirmation stay authoritative.
func (r *reservationUseCaseImpl) precheck(ctx context.Context, payerID uuid.UUID, slotIDs []uuid.UUID) (*checkout, error) {
	var co *checkout
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		co = &checkout{payerID: payerID, slotIDs: slotIDs}

		var hourly booking.Money
		for i, slotID := range slotIDs {
			free, err := tx.Slots().IsAvailable(ctx, tx.DB(), slotID)
			if err != nil {
				return mapSlotErr(err)
			}
			if !free {
				return ErrSlotUnavailable
			}

			snap, err := tx.Reads().SlotByID(ctx, slotID)
			if err != nil {
				return mapSlotErr(err)
			}

			if i == 0 {
				co.venueID = snap.VenueID
				hourly, err = r.venueRate(ctx, tx, snap.VenueID)
				if err != nil {
					return err
				}
			} else if snap.VenueID != co.venueID {
				return ErrMixedVenues
			}

			price := r.pricing.PriceFor(hourly, snap.Window.Duration())
			co.prices = append(co.prices, price)
			total, err := co.total.Add(price)
			if err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			co.total = total
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return co, nil
}

func (r *reservationUseCaseImpl) venueRate(ctx context.Context, tx shared.Tx, venueID uuid.UUID) (booking.Money, error) {
	snap, err := tx.Reads().VenueByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Money{}, ErrVenueNotFound
		}
		return booking.Money{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	v := venue.ReconstructVenue(snap.ID, snap.OwnerID, snap.Name, snap.PricePerHourMinor, snap.Currency,
		snap.OpeningHour, snap.ClosingHour, snap.Approved)
	if err := v.EnsureBookable(); err != nil {
		// unapproved venues are invisible to payers
		return booking.Money{}, ErrVenueNotFound
	}

	rate, err := booking.NewMoney(v.PricePerHourMinor(), v.Currency())
	if err != nil {
		return booking.Money{}, errs.Mark(errs.Wrap(err, ErrInvalidVenuePrice.Error()), errs.ErrValidation)
	}
	return rate, nil
}

func (r *reservationUseCaseImpl) Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error) {
	if !r.verifier.Verify(req.OrderID, req.PaymentID, req.Signature) {
		r.failUnverifiedOrder(ctx, req.OrderID)
		return nil, ErrInvalidSignature
	}

	orderID, err := booking.NewOrderID(req.OrderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	paymentID, err := booking.NewPaymentID(req.PaymentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	bookings, err := r.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := &ConfirmResult{OrderID: orderID, PaymentID: paymentID}
	lost, unsettled := 0, 0
	var slotErr error
	for _, b := range bookings {
		var outcome SlotOutcome
		if b.Status().IsTerminal() {
			outcome, err = r.reportSettled(ctx, b, paymentID)
		} else {
			outcome, err = r.confirmSlot(ctx, b, paymentID)
		}
		if err != nil {
			// siblings keep their own transactions; this slot stays PENDING for a retry
			r.logger.Error("slot confirmation failed",
				"order_id", orderID.String(),
				"booking_id", b.ID(),
				"error", err.Error())
			if slotErr == nil {
				slotErr = err
			}
			unsettled++
			outcome = SlotOutcome{
				BookingID: b.ID(),
				SlotID:    b.SlotID(),
				Status:    b.Status(),
				Reason:    ReasonStorageError,
			}
		}
		if outcome.Status == booking.StatusFailed {
			lost++
		}
		result.Slots = append(result.Slots, outcome)
	}

	if slotErr != nil {
		if unsettled == len(result.Slots) {
			return nil, slotErr
		}
		return result, slotErr
	}
	if result.ConfirmedCount() == 0 && lost > 0 {
		return result, ErrOrderNotConfirmed
	}
	return result, nil
}
