//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"turfbook/internal/infra"
	"turfbook/internal/infra/readstore"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/tests/common/builder"
	readstoremock "turfbook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot carries hours and approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
		store := readstore.NewVenueReadStore(mockQueries, nil)

		vb := builder.NewVenueBuilder().WithHours(7, 22).AsUnapproved()
		mockQueries.EXPECT().GetVenueByID(ctx, gomock.Any(), vb.ID).Return(vb.BuildInfra(), nil)

		snap, err := store.FindByID(ctx, vb.ID)

		require.NoError(t, err)
		assert.Equal(t, vb.BuildSnapshot(), snap)
	})

	t.Run("missing venue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
		store := readstore.NewVenueReadStore(mockQueries, nil)
		mockQueries.EXPECT().GetVenueByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Venues{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("approved ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVenueReadQueries(ctrl)
		store := readstore.NewVenueReadStore(mockQueries, nil)
		ids := []uuid.UUID{uuid.New()}
		mockQueries.EXPECT().ListApprovedVenueIDs(ctx, gomock.Any()).Return(ids, nil)

		got, err := store.ListApprovedIDs(ctx)

		require.NoError(t, err)
		assert.Equal(t, ids, got)
	})
}
