package commands

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/domain/principal"
	"turfbook/internal/domain/slot"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVenueNotManaged = errs.Mark(errs.New("principal cannot manage this venue"), errs.ErrForbidden)

type ReconcileRequest struct {
	VenueID uuid.UUID
	// From is truncated to its UTC date; zero means today.
	From time.Time
	Days int
}

type ReconcileResult struct {
	VenueID  uuid.UUID
	From     time.Time
	Days     int
	Inserted int64
	Deleted  int64
	// Retained counts slots outside opening hours kept because they are booked.
	Retained int
	Kept     int
}

type SlotCommands interface {
	Reconcile(ctx context.Context, actor principal.Principal, req ReconcileRequest) (*ReconcileResult, error)
	// ReconcileAll rolls the window forward for every approved venue.
	ReconcileAll(ctx context.Context, from time.Time, days int) ([]*ReconcileResult, error)
}

type slotUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSlotUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *slotUseCaseImpl) Reconcile(ctx context.Context, actor principal.Principal, req ReconcileRequest) (*ReconcileResult, error) {
	v, err := uc.uow.CommandReads().VenueByID(ctx, req.VenueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := actor.CanManageVenue(v.OwnerID); err != nil {
		return nil, errs.Wrap(ErrVenueNotManaged, err.Error())
	}

	from := req.From
	if from.IsZero() {
		from = uc.clock.Now()
	}
	desired, err := slot.DesiredWindows(from, req.Days, v.OpeningHour, v.ClosingHour)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	start := desired[0].Date()
	end := start.AddDate(0, 0, req.Days)
	result := &ReconcileResult{VenueID: v.ID, From: start, Days: req.Days}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().SlotsInRange(ctx, v.ID, start, end)
		if err != nil {
			return err
		}

		plan := slot.Reconcile(desired, existing)
		result.Retained = len(plan.Retained)
		result.Kept = plan.Kept
		if plan.IsEmpty() {
			result.Inserted, result.Deleted = 0, 0
			return nil
		}

		if result.Inserted, err = tx.Slots().InsertMissing(ctx, tx.DB(), v.ID, plan.Insert); err != nil {
			return err
		}
		result.Deleted, err = tx.Slots().DeleteUnreferenced(ctx, tx.DB(), plan.Delete)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.logger.Info("slots reconciled",
		"venue_id", v.ID,
		"from", start.Format(time.DateOnly),
		"days", req.Days,
		"inserted", result.Inserted,
		"deleted", result.Deleted,
		"retained", result.Retained)
	return result, nil
}

func (uc *slotUseCaseImpl) ReconcileAll(ctx context.Context, from time.Time, days int) ([]*ReconcileResult, error) {
	ids, err := uc.uow.CommandReads().ApprovedVenueIDs(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	system := principal.System()
	results := make([]*ReconcileResult, 0, len(ids))
	var failures []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := uc.Reconcile(ctx, system, ReconcileRequest{VenueID: id, From: from, Days: days})
		if err != nil {
			uc.logger.Error("slot reconciliation failed", "venue_id", id, "error", err.Error())
			failures = append(failures, errs.Wrapf(err, "venue %s", id))
			continue
		}
		results = append(results, res)
	}

	if len(failures) > 0 {
		return results, errs.Join(failures...)
	}
	return results, nil
}
