//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/internal/domain/principal"
	"turfbook/internal/infra"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	queriesmock "turfbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	payer := builder.NewPrincipalBuilder().Build()
	view := builder.NewBookingBuilder().WithPayerID(payer.ID()).BuildView()

	testCases := []struct {
		name    string
		actor   principal.Principal
		setup   func(*queriesmock.MockBookingReadStore)
		wantErr error
	}{
		{
			name:  "owner sees the booking",
			actor: payer,
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			},
		},
		{
			name:  "super admin sees any booking",
			actor: builder.NewPrincipalBuilder().AsSuperAdmin().Build(),
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			},
		},
		{
			name:  "another payer gets not found",
			actor: builder.NewPrincipalBuilder().Build(),
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			},
			wantErr: queries.ErrBookingNotFound,
		},
		{
			name:  "missing booking",
			actor: payer,
			setup: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setup(store)

			got, err := queries.NewBookingQueries(store).GetByID(ctx, tc.actor, view.ID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	payer := builder.NewPrincipalBuilder().Build()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	views := func(n int) []*queries.BookingView {
		out := make([]*queries.BookingView, n)
		for i := range out {
			out[i] = builder.NewBookingBuilder().WithPayerID(payer.ID()).WithCreatedAt(base.Add(-time.Duration(i) * time.Minute)).BuildView()
		}
		return out
	}

	t.Run("first page with more rows returns a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := views(3)
		store.EXPECT().FindByPayerFirstPage(ctx, payer.ID(), int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store).ListMine(ctx, payer, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base, lastID)}
		store.EXPECT().FindByPayerKeyset(ctx, payer.ID(), base, lastID, int32(queries.DefaultListLimit+1)).Return(views(1), nil)

		got, next, err := queries.NewBookingQueries(store).ListMine(ctx, payer, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListMine(ctx, payer, &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListMine(ctx, principal.Principal{}, nil, 10)

		assert.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("store error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		boom := errors.New("boom")
		store.EXPECT().FindByPayerFirstPage(ctx, payer.ID(), gomock.Any()).Return(nil, boom)

		_, _, err := queries.NewBookingQueries(store).ListMine(ctx, payer, nil, 10)

		assert.ErrorIs(t, err, boom)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
