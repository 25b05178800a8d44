//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string, approved bool) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (email, role, is_approved) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, is_approved = EXCLUDED.is_approved
		 RETURNING id`,
		email, role, approved).Scan(&userID)
	require.NoError(t, err)
	return userID
}

type VenueFixture struct {
	OwnerID           uuid.UUID
	Name              string
	PricePerHourMinor int64
	Currency          string
	OpeningHour       int
	ClosingHour       int
	Approved          bool
}

func CreateTestVenue(t *testing.T, db DBLike, v VenueFixture) uuid.UUID {
	t.Helper()

	if v.Name == "" {
		v.Name = "Arena Five"
	}
	if v.Currency == "" {
		v.Currency = "THB"
	}

	var venueID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO venues (owner_id, name, price_per_hour_minor, currency, opening_hour, closing_hour, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		v.OwnerID, v.Name, v.PricePerHourMinor, v.Currency, v.OpeningHour, v.ClosingHour, v.Approved).Scan(&venueID)
	require.NoError(t, err)
	return venueID
}

// CreateTestSlot inserts a one-hour slot starting at startHour on date.
func CreateTestSlot(t *testing.T, db DBLike, venueID uuid.UUID, date time.Time, startHour int) uuid.UUID {
	t.Helper()

	var slotID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO slots (venue_id, slot_date, start_time, end_time)
		 VALUES ($1, $2::date, make_time($3, 0, 0), make_time($3, 0, 0) + interval '1 hour')
		 RETURNING id`,
		venueID, date.Format(time.DateOnly), startHour).Scan(&slotID)
	require.NoError(t, err)
	return slotID
}

func SlotIsBooked(t *testing.T, db DBLike, slotID uuid.UUID) bool {
	t.Helper()

	var booked bool
	err := db.QueryRow(context.Background(), "SELECT is_booked FROM slots WHERE id = $1", slotID).Scan(&booked)
	require.NoError(t, err)
	return booked
}

func CountSlots(t *testing.T, db DBLike, venueID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM slots WHERE venue_id = $1", venueID).Scan(&n)
	require.NoError(t, err)
	return n
}

type BookingRow struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	Status    string
	PaymentID *string
}

func BookingsByOrder(t *testing.T, pool *pgxpool.Pool, orderID string) []BookingRow {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		"SELECT id, slot_id, status, payment_id FROM bookings WHERE order_id = $1 ORDER BY created_at, id", orderID)
	require.NoError(t, err)
	defer rows.Close()

	var out []BookingRow
	for rows.Next() {
		var b BookingRow
		require.NoError(t, rows.Scan(&b.ID, &b.SlotID, &b.Status, &b.PaymentID))
		out = append(out, b)
	}
	require.NoError(t, rows.Err())
	return out
}

// AgeBookings moves created_at of every booking of the order back by d.
func AgeBookings(t *testing.T, db DBLike, orderID string, d time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET created_at = created_at - make_interval(secs => $2) WHERE order_id = $1",
		orderID, d.Seconds())
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the goose version table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
