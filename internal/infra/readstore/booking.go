package readstore

import (
	"context"
	"time"

	"turfbook/internal/infra"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViewsByPayerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByPayerFirstPageParams) ([]sqlc.ListBookingViewsByPayerFirstPageRow, error)
	ListBookingViewsByPayerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByPayerKeysetParams) ([]sqlc.ListBookingViewsByPayerKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindByPayerFirstPage(ctx context.Context, payerID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByPayerFirstPage(ctx, r.db, sqlc.ListBookingViewsByPayerFirstPageParams{
		PayerID: payerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by payer", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByIDRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) FindByPayerKeyset(ctx context.Context, payerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByPayerKeyset(ctx, r.db, sqlc.ListBookingViewsByPayerKeysetParams{
		PayerID:    payerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		BatchLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by payer", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByIDRow(row)))
	}
	return views, nil
}

// the three list/get rows share one column set
func toBookingView(row sqlc.GetBookingViewByIDRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:          row.ID,
		PayerID:     row.PayerID,
		VenueID:     row.VenueID,
		VenueName:   row.VenueName,
		SlotID:      row.SlotID,
		Status:      row.Status,
		OrderID:     row.OrderID,
		PaymentID:   pgconv.StringPtrFromPgtype(row.PaymentID),
		AmountMinor: row.AmountMinor,
		Currency:    row.Currency,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.SlotDate.Valid && row.StartTime.Valid && row.EndTime.Valid {
		date := pgconv.DateFromPgtype(row.SlotDate)
		startsAt := date.Add(pgconv.OffsetFromPgTime(row.StartTime))
		endsAt := date.Add(pgconv.OffsetFromPgTime(row.EndTime))
		view.StartsAt = &startsAt
		view.EndsAt = &endsAt
	}
	return view
}
