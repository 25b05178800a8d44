package queries

import (
	"context"
	"time"

	"turfbook/internal/domain/principal"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess   = errs.Mark(errs.New("booking access denied"), errs.ErrForbidden)
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByPayerFirstPage(ctx context.Context, payerID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByPayerKeyset(ctx context.Context, payerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor principal.Principal, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor principal.Principal, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID answers not found rather than forbidden for other payers' bookings.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor principal.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.CanView(view.PayerID) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor principal.Principal, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if err := actor.CanReserve(); err != nil {
		return nil, nil, ErrBookingAccess
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByPayerFirstPage(ctx, actor.ID(), int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByPayerKeyset(ctx, actor.ID(), lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
