package readstore

import (
	"context"

	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueReadQueries interface {
	GetVenueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Venues, error)
	ListApprovedVenueIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
}

type VenueReadStore struct {
	queries VenueReadQueries
	db      sqlc.DBTX
}

func NewVenueReadStore(queries VenueReadQueries, db sqlc.DBTX) *VenueReadStore {
	return &VenueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	row, err := r.queries.GetVenueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get venue by id", err)
	}

	return &shared.VenueSnapshot{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Name:              row.Name,
		PricePerHourMinor: row.PricePerHourMinor,
		Currency:          row.Currency,
		OpeningHour:       int(row.OpeningHour),
		ClosingHour:       int(row.ClosingHour),
		Approved:          row.IsApproved,
	}, nil
}

func (r *VenueReadStore) ListApprovedIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListApprovedVenueIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved venues", err)
	}
	return ids, nil
}
