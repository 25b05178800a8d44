package readstore

import (
	"context"

	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &shared.UserSnapshot{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		Approved: row.IsApproved,
	}, nil
}
