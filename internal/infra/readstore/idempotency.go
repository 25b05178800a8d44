package readstore

import (
	"context"

	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      sqlc.DBTX
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db sqlc.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
	}
}

// Get returns the record even when expired; the caller decides whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.StringPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
