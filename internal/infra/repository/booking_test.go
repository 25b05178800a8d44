//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/infra/repository"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/clock"
	"turfbook/tests/common/builder"
	repositorymock "turfbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	now                 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
)

// =============================================================================
// CreatePending Tests
// =============================================================================

func TestBookingRepository_CreatePending(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: pending booking inserted",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				m.EXPECT().CreatePendingBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePendingBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, b.SlotID(), arg.SlotID)
						assert.Equal(t, b.OrderID().String(), arg.OrderID)
						return sqlc.Bookings{ID: b.ID()}, nil
					})
			},
		},
		{
			name: "error: slot already booked",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				m.EXPECT().CreatePendingBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)
				m.EXPECT().GetSlotByID(ctx, tx, b.SlotID()).Return(builder.NewSlotBuilder().AsBooked().BuildInfra(), nil)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: slot does not exist",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				m.EXPECT().CreatePendingBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)
				m.EXPECT().GetSlotByID(ctx, tx, b.SlotID()).Return(sqlc.Slots{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				m.EXPECT().CreatePendingBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().BuildPending(clock.NewMockClock(now))
			require.NoError(t, err)
			tc.setupMock(mockQueries, b, mockDB)

			err = repo.CreatePending(ctx, mockDB, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// Guarded Transition Tests
// =============================================================================

func TestBookingRepository_TransitionToConfirmed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: pending row updated",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().ConfirmPendingBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ConfirmPendingBookingParams) (int64, error) {
						assert.Equal(t, id, arg.ID)
						assert.Equal(t, "pay_1", arg.PaymentID.String)
						assert.True(t, arg.PaymentID.Valid)
						return 1, nil
					})
			},
		},
		{
			name: "error: booking no longer pending",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().ConfirmPendingBooking(ctx, tx, gomock.Any()).Return(int64(0), nil)
				m.EXPECT().GetBookingByID(ctx, tx, id).Return(builder.NewBookingBuilder().WithID(id).AsFailed().BuildInfra(), nil)
			},
			expectKind: infra.KindInvalidState,
		},
		{
			name: "error: booking missing",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().ConfirmPendingBooking(ctx, tx, gomock.Any()).Return(int64(0), nil)
				m.EXPECT().GetBookingByID(ctx, tx, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().ConfirmPendingBooking(ctx, tx, gomock.Any()).Return(int64(0), errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := repo.TransitionToConfirmed(ctx, mockDB, id, "pay_1", now)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingRepository_TransitionToFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("payment id is stored for the refund trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		pid := booking.PaymentID("pay_9")
		mockQueries.EXPECT().FailPendingBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.FailPendingBookingParams) (int64, error) {
				assert.Equal(t, "pay_9", arg.PaymentID.String)
				assert.True(t, arg.PaymentID.Valid)
				return 1, nil
			})

		assert.NoError(t, repo.TransitionToFailed(ctx, mockDB, id, &pid, now))
	})

	t.Run("no payment leaves the column null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FailPendingBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.FailPendingBookingParams) (int64, error) {
				assert.False(t, arg.PaymentID.Valid)
				return 1, nil
			})

		assert.NoError(t, repo.TransitionToFailed(ctx, mockDB, id, nil, now))
	})

	t.Run("terminal booking is invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FailPendingBooking(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
		mockQueries.EXPECT().GetBookingByID(ctx, mockDB, id).Return(builder.NewBookingBuilder().WithID(id).AsConfirmed("p").BuildInfra(), nil)

		err := repo.TransitionToFailed(ctx, mockDB, id, nil, now)
		assert.True(t, infra.IsKind(err, infra.KindInvalidState))
	})
}

func TestBookingRepository_AttachPaymentRef(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	mockQueries.EXPECT().AttachPaymentToFailedBooking(ctx, mockDB, gomock.Any()).Return(int64(1), nil)
	assert.NoError(t, repo.AttachPaymentRef(ctx, mockDB, id, "pay", now))

	mockQueries.EXPECT().AttachPaymentToFailedBooking(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
	err := repo.AttachPaymentRef(ctx, mockDB, id, "pay", now)
	assert.True(t, infra.IsKind(err, infra.KindInvalidState))
}

// =============================================================================
// Read Tests
// =============================================================================

func TestBookingRepository_FindByOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("rows are converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		confirmed := builder.NewBookingBuilder().WithOrderID("order_1").AsConfirmed("pay_1")
		pending := builder.NewBookingBuilder().WithOrderID("order_1")
		mockQueries.EXPECT().ListBookingsByOrderID(ctx, mockDB, "order_1").
			Return([]sqlc.Bookings{confirmed.BuildInfra(), pending.BuildInfra()}, nil)

		got, err := repo.FindByOrder(ctx, mockDB, "order_1")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, booking.StatusConfirmed, got[0].Status())
		require.NotNil(t, got[0].PaymentID())
		assert.Equal(t, booking.PaymentID("pay_1"), *got[0].PaymentID())
		assert.Equal(t, booking.StatusPending, got[1].Status())
		assert.Nil(t, got[1].PaymentID())
		assert.Equal(t, confirmed.AmountMinor, got[0].Price().Minor())
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingsByOrderID(ctx, mockDB, "order_x").Return(nil, nil)

		_, err := repo.FindByOrder(ctx, mockDB, "order_x")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		row := builder.NewBookingBuilder().BuildInfra()
		row.Status = "REFUNDED"
		mockQueries.EXPECT().ListBookingsByOrderID(ctx, mockDB, gomock.Any()).Return([]sqlc.Bookings{row}, nil)

		_, err := repo.FindByOrder(ctx, mockDB, "order_1")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_FailStalePending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	row := sqlc.FailStalePendingBookingsRow{ID: uuid.New(), PayerID: uuid.New(), SlotID: uuid.New(), OrderID: "order_1"}
	cutoff := now.Add(-15 * time.Minute)
	mockQueries.EXPECT().FailStalePendingBookings(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.FailStalePendingBookingsParams) ([]sqlc.FailStalePendingBookingsRow, error) {
			assert.Equal(t, cutoff, arg.CreatedBefore.Time)
			assert.Equal(t, int32(100), arg.BatchSize)
			return []sqlc.FailStalePendingBookingsRow{row}, nil
		})

	got, err := repo.FailStalePending(ctx, mockDB, cutoff, now, 100)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, row.ID, got[0].ID)
	assert.Equal(t, row.OrderID, got[0].OrderID)
}
