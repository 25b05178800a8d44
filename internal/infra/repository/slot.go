package repository

import (
	"context"

	"turfbook/internal/domain/slot"
	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	MarkSlotOccupied(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	MarkSlotAvailable(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) (int64, error)
	LockSlotsForDelete(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteUnreferencedSlots(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) IsAvailable(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error) {
	row, err := r.queries.GetSlotByID(ctx, tx, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to read slot", err)
	}
	return !row.IsBooked, nil
}

// MarkOccupied is a single conditional UPDATE; the caller never reads is_booked first.
func (r *SlotRepository) MarkOccupied(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkSlotOccupied(ctx, tx, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark slot occupied", err)
	}
	return affected == 1, nil
}

func (r *SlotRepository) MarkAvailable(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) error {
	affected, err := r.queries.MarkSlotAvailable(ctx, tx, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark slot available", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) InsertMissing(ctx context.Context, tx sqlc.DBTX, venueID uuid.UUID, windows []slot.Window) (int64, error) {
	var inserted int64
	for _, w := range windows {
		n, err := r.queries.InsertSlot(ctx, tx, sqlc.InsertSlotParams{
			VenueID:   venueID,
			SlotDate:  pgconv.DateToPgtype(w.Date()),
			StartTime: pgconv.OffsetToPgTime(w.Start()),
			EndTime:   pgconv.OffsetToPgTime(w.End()),
		})
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to insert slot", err)
		}
		inserted += n
	}
	return inserted, nil
}

// DeleteUnreferenced re-checks occupancy and live bookings in SQL, so a slot booked after
// the plan was computed survives. The rows are locked first: CreatePending holds a key-share
// lock on its slot, so the DELETE statement only starts after that booking is visible.
func (r *SlotRepository) DeleteUnreferenced(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	locked, err := r.queries.LockSlotsForDelete(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to lock slots", err)
	}
	if len(locked) == 0 {
		return 0, nil
	}
	deleted, err := r.queries.DeleteUnreferencedSlots(ctx, tx, locked)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete slots", err)
	}
	return deleted, nil
}
