//go:build unit || e2e

package builder

import (
	"time"

	"turfbook/internal/domain/slot"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotBuilder struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	Date      time.Time
	StartHour int
	EndHour   int
	Booked    bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:        uuid.New(),
		VenueID:   uuid.New(),
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartHour: 18,
		EndHour:   19,
	}
}

func (b *SlotBuilder) WithID(id uuid.UUID) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithVenueID(id uuid.UUID) *SlotBuilder {
	b.VenueID = id
	return b
}

func (b *SlotBuilder) WithDate(d time.Time) *SlotBuilder {
	b.Date = d
	return b
}

func (b *SlotBuilder) WithHours(start, end int) *SlotBuilder {
	b.StartHour = start
	b.EndHour = end
	return b
}

func (b *SlotBuilder) AsBooked() *SlotBuilder {
	b.Booked = true
	return b
}

func (b *SlotBuilder) Window() slot.Window {
	w, err := slot.NewWindow(b.Date, time.Duration(b.StartHour)*time.Hour, time.Duration(b.EndHour)*time.Hour)
	if err != nil {
		panic(err)
	}
	return w
}

func (b *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:      b.ID,
		VenueID: b.VenueID,
		Window:  b.Window(),
		Booked:  b.Booked,
	}
}

func (b *SlotBuilder) BuildExisting(hasLiveBooking bool) slot.Existing {
	return slot.Existing{
		ID:             b.ID,
		Window:         b.Window(),
		Booked:         b.Booked,
		HasLiveBooking: hasLiveBooking,
	}
}

func (b *SlotBuilder) BuildInfra() sqlc.Slots {
	y, m, d := b.Date.UTC().Date()
	return sqlc.Slots{
		ID:        b.ID,
		VenueID:   b.VenueID,
		SlotDate:  pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true},
		StartTime: pgtype.Time{Microseconds: (time.Duration(b.StartHour) * time.Hour).Microseconds(), Valid: true},
		EndTime:   pgtype.Time{Microseconds: (time.Duration(b.EndHour) * time.Hour).Microseconds(), Valid: true},
		IsBooked:  b.Booked,
		CreatedAt: pgtype.Timestamptz{Time: b.Date, Valid: true},
	}
}
