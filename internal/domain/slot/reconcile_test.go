//go:build unit

package slot_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/slot"
	"turfbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestDesiredWindows(t *testing.T) {
	t.Run("hourly windows for every day", func(t *testing.T) {
		ws, err := slot.DesiredWindows(day0.Add(15*time.Hour), 2, 6, 9)
		require.NoError(t, err)
		require.Len(t, ws, 6)

		assert.Equal(t, day0.Add(6*time.Hour), ws[0].StartsAt())
		assert.Equal(t, day0.AddDate(0, 0, 1).Add(8*time.Hour), ws[5].StartsAt())
		for _, w := range ws {
			assert.Equal(t, time.Hour, w.Duration())
		}
	})

	testCases := []struct {
		name        string
		days        int
		open, close int
		errIs       error
	}{
		{name: "zero days", days: 0, open: 6, close: 22, errIs: slot.ErrInvalidRange},
		{name: "too many days", days: slot.MaxReconcileDays + 1, open: 6, close: 22, errIs: slot.ErrInvalidRange},
		{name: "closed venue", days: 1, open: 10, close: 10, errIs: slot.ErrInvalidHours},
		{name: "closing past midnight", days: 1, open: 6, close: 25, errIs: slot.ErrInvalidHours},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := slot.DesiredWindows(day0, tc.days, tc.open, tc.close)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewWindow(t *testing.T) {
	_, err := slot.NewWindow(day0, 3*time.Hour, 3*time.Hour)
	assert.ErrorIs(t, err, slot.ErrInvalidWindow)

	_, err = slot.NewWindow(day0, 23*time.Hour, 25*time.Hour)
	assert.ErrorIs(t, err, slot.ErrInvalidWindow)

	w, err := slot.NewWindow(day0.Add(13*time.Hour), 7*time.Hour, 8*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, day0, w.Date())
	assert.Equal(t, "2026-03-02", w.Key().Date)
}

func TestReconcile(t *testing.T) {
	venueID := uuid.New()
	at := func(h int) *builder.SlotBuilder {
		return builder.NewSlotBuilder().WithVenueID(venueID).WithDate(day0).WithHours(h, h+1)
	}

	desired, err := slot.DesiredWindows(day0, 1, 8, 11)
	require.NoError(t, err)

	t.Run("empty venue inserts everything", func(t *testing.T) {
		plan := slot.Reconcile(desired, nil)
		assert.Len(t, plan.Insert, 3)
		assert.Empty(t, plan.Delete)
		assert.Equal(t, 0, plan.Kept)
		assert.False(t, plan.IsEmpty())
	})

	t.Run("matching set is a no-op", func(t *testing.T) {
		existing := []slot.Existing{
			at(8).BuildExisting(false),
			at(9).BuildExisting(false),
			at(10).BuildExisting(false),
		}
		plan := slot.Reconcile(desired, existing)
		assert.True(t, plan.IsEmpty())
		assert.Equal(t, 3, plan.Kept)
	})

	t.Run("stale slots are deleted unless booked or referenced", func(t *testing.T) {
		free := at(20)
		booked := at(21).AsBooked()
		referenced := at(22)
		existing := []slot.Existing{
			at(8).BuildExisting(false),
			free.BuildExisting(false),
			booked.BuildExisting(false),
			referenced.BuildExisting(true),
		}

		plan := slot.Reconcile(desired, existing)

		assert.Equal(t, []uuid.UUID{free.ID}, plan.Delete)
		assert.ElementsMatch(t, []uuid.UUID{booked.ID, referenced.ID}, plan.Retained)
		require.Len(t, plan.Insert, 2)
		assert.Equal(t, day0.Add(9*time.Hour), plan.Insert[0].StartsAt())
		assert.Equal(t, day0.Add(10*time.Hour), plan.Insert[1].StartsAt())
		assert.Equal(t, 1, plan.Kept)
	})

	t.Run("a booked slot inside the desired set is kept", func(t *testing.T) {
		existing := []slot.Existing{at(9).AsBooked().BuildExisting(true)}
		plan := slot.Reconcile(desired, existing)
		assert.Empty(t, plan.Delete)
		assert.Empty(t, plan.Retained)
		assert.Len(t, plan.Insert, 2)
	})

	t.Run("output order is deterministic", func(t *testing.T) {
		existing := []slot.Existing{
			at(1).BuildExisting(false),
			at(2).BuildExisting(false),
			at(3).BuildExisting(false),
		}
		first := slot.Reconcile(desired, existing)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, slot.Reconcile(desired, existing))
		}
	})
}

func TestSlotAvailability(t *testing.T) {
	b := builder.NewSlotBuilder()
	s := slot.ReconstructSlot(b.ID, b.VenueID, b.Window(), false)
	assert.True(t, s.IsAvailable())

	booked := slot.ReconstructSlot(b.ID, b.VenueID, b.Window(), true)
	assert.False(t, booked.IsAvailable())
	assert.True(t, booked.IsBooked())
}
