//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/internal/infra"
	"turfbook/internal/infra/readstore"
	sqlc "turfbook/internal/infra/sqlc/generated"
	readstoremock "turfbook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	slotDay             = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
)

func bookingViewRow(id uuid.UUID, withSlot bool) sqlc.GetBookingViewByIDRow {
	row := sqlc.GetBookingViewByIDRow{
		ID:          id,
		PayerID:     uuid.New(),
		VenueID:     uuid.New(),
		VenueName:   "Arena Five",
		SlotID:      uuid.New(),
		Status:      "CONFIRMED",
		OrderID:     "order_1",
		PaymentID:   pgtype.Text{String: "pay_1", Valid: true},
		AmountMinor: 120000,
		Currency:    "THB",
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	if withSlot {
		row.SlotDate = pgtype.Date{Time: slotDay, Valid: true}
		row.StartTime = pgtype.Time{Microseconds: (18 * time.Hour).Microseconds(), Valid: true}
		row.EndTime = pgtype.Time{Microseconds: (19 * time.Hour).Microseconds(), Valid: true}
	}
	return row
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries)
		wantSlot   bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking with slot times",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(bookingViewRow(id, true), nil)
			},
			wantSlot: true,
		},
		{
			name: "success: slot row already removed",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(bookingViewRow(id, false), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewByIDRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockBookingViewQueries) {
				m.EXPECT().GetBookingViewByID(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewByIDRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries, nil)

			view, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			require.NotNil(t, view.PaymentID)
			assert.Equal(t, "pay_1", *view.PaymentID)
			if tc.wantSlot {
				require.NotNil(t, view.StartsAt)
				assert.Equal(t, slotDay.Add(18*time.Hour), *view.StartsAt)
				assert.Equal(t, slotDay.Add(19*time.Hour), *view.EndsAt)
			} else {
				assert.Nil(t, view.StartsAt)
				assert.Nil(t, view.EndsAt)
			}
		})
	}
}

// =============================================================================
// Pagination Tests
// =============================================================================

func TestBookingReadStore_Pages(t *testing.T) {
	ctx := context.Background()
	payerID := uuid.New()

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		row := sqlc.ListBookingViewsByPayerFirstPageRow(bookingViewRow(uuid.New(), true))
		mockQueries.EXPECT().ListBookingViewsByPayerFirstPage(ctx, gomock.Any(), sqlc.ListBookingViewsByPayerFirstPageParams{
			PayerID: payerID,
			Limit:   21,
		}).Return([]sqlc.ListBookingViewsByPayerFirstPageRow{row}, nil)

		views, err := store.FindByPayerFirstPage(ctx, payerID, 21)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, row.ID, views[0].ID)
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		lastAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		mockQueries.EXPECT().ListBookingViewsByPayerKeyset(ctx, gomock.Any(), sqlc.ListBookingViewsByPayerKeysetParams{
			PayerID:    payerID,
			CreatedAt:  pgtype.Timestamptz{Time: lastAt, Valid: true},
			ID:         lastID,
			BatchLimit: 11,
		}).Return(nil, errDBConnectionLost)

		_, err := store.FindByPayerKeyset(ctx, payerID, lastAt, lastID, 11)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
