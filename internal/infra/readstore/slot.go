package readstore

import (
	"context"
	"time"

	"turfbook/internal/domain/slot"
	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	ListSlotsInRangeWithLiveBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsInRangeWithLiveBookingsParams) ([]sqlc.ListSlotsInRangeWithLiveBookingsRow, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by id", err)
	}

	window, err := windowFromRow(row.SlotDate, row.StartTime, row.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt slot row", err)
	}

	return &shared.SlotSnapshot{
		ID:      row.ID,
		VenueID: row.VenueID,
		Window:  window,
		Booked:  row.IsBooked,
	}, nil
}

// FindInRange lists slots with slot_date in [from, to).
func (r *SlotReadStore) FindInRange(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]slot.Existing, error) {
	rows, err := r.queries.ListSlotsInRangeWithLiveBookings(ctx, r.db, sqlc.ListSlotsInRangeWithLiveBookingsParams{
		VenueID:  venueID,
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots in range", err)
	}

	existing := make([]slot.Existing, 0, len(rows))
	for _, row := range rows {
		window, werr := windowFromRow(row.SlotDate, row.StartTime, row.EndTime)
		if werr != nil {
			return nil, infra.WrapRepoErr("corrupt slot row", werr)
		}
		existing = append(existing, slot.Existing{
			ID:             row.ID,
			Window:         window,
			Booked:         row.IsBooked,
			HasLiveBooking: row.HasLiveBooking,
		})
	}
	return existing, nil
}

func windowFromRow(date pgtype.Date, start, end pgtype.Time) (slot.Window, error) {
	return slot.NewWindow(
		pgconv.DateFromPgtype(date),
		pgconv.OffsetFromPgTime(start),
		pgconv.OffsetFromPgTime(end),
	)
}
