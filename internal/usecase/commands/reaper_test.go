//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reapedRows(n int) []shared.ReapedBooking {
	rows := make([]shared.ReapedBooking, n)
	for i := range rows {
		rows[i] = shared.ReapedBooking{ID: uuid.New(), PayerID: uuid.New(), SlotID: uuid.New(), OrderID: "order_stale"}
	}
	return rows
}

func TestReapStale(t *testing.T) {
	ttl := 15 * time.Minute

	t.Run("fails stale pending bookings and never touches slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReaperUseCase(m.uow, m.clock, ttl, 10, discardLogger())

		rows := reapedRows(2)
		m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), testNow.Add(-ttl), testNow, int32(10)).Return(rows, nil)
		m.expectEvent(commands.TopicBookingExpired).
			Do(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) {
				var ev commands.BookingEvent
				require.NoError(t, json.Unmarshal(payload, &ev))
				assert.Equal(t, commands.ReasonExpired, ev.Reason)
				assert.False(t, ev.RefundRequired)
			}).Times(2)
		m.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		res, err := uc.ReapStale(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, res.Expired)
		assert.Equal(t, int64(3), res.PurgedKeys)
	})

	t.Run("keeps going while batches are full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReaperUseCase(m.uow, m.clock, ttl, 2, discardLogger())

		gomock.InOrder(
			m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int32(2)).Return(reapedRows(2), nil),
			m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int32(2)).Return(reapedRows(2), nil),
			m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int32(2)).Return(reapedRows(1), nil),
		)
		m.expectEvent(commands.TopicBookingExpired).Times(5)
		m.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		res, err := uc.ReapStale(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 5, res.Expired)
	})

	t.Run("nothing stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReaperUseCase(m.uow, m.clock, ttl, 0, discardLogger())

		m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int32(500)).Return(nil, nil)
		m.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		res, err := uc.ReapStale(context.Background())

		require.NoError(t, err)
		assert.Zero(t, res.Expired)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReaperUseCase(m.uow, m.clock, ttl, 10, discardLogger())

		m.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := uc.ReapStale(context.Background())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("cancelled context stops before reaping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewReaperUseCase(m.uow, m.clock, ttl, 10, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := uc.ReapStale(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
