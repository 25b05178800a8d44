//go:build unit || e2e

package builder

import (
	"time"

	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VenueBuilder struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	PricePerHourMinor int64
	Currency          string
	OpeningHour       int
	ClosingHour       int
	Approved          bool
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		Name:              "Arena Five",
		PricePerHourMinor: 120000,
		Currency:          "THB",
		OpeningHour:       6,
		ClosingHour:       23,
		Approved:          true,
	}
}

func (b *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	b.ID = id
	return b
}

func (b *VenueBuilder) WithOwnerID(id uuid.UUID) *VenueBuilder {
	b.OwnerID = id
	return b
}

func (b *VenueBuilder) WithPrice(minor int64, currency string) *VenueBuilder {
	b.PricePerHourMinor = minor
	b.Currency = currency
	return b
}

func (b *VenueBuilder) WithHours(open, close int) *VenueBuilder {
	b.OpeningHour = open
	b.ClosingHour = close
	return b
}

func (b *VenueBuilder) AsUnapproved() *VenueBuilder {
	b.Approved = false
	return b
}

func (b *VenueBuilder) BuildSnapshot() *shared.VenueSnapshot {
	return &shared.VenueSnapshot{
		ID:                b.ID,
		OwnerID:           b.OwnerID,
		Name:              b.Name,
		PricePerHourMinor: b.PricePerHourMinor,
		Currency:          b.Currency,
		OpeningHour:       b.OpeningHour,
		ClosingHour:       b.ClosingHour,
		Approved:          b.Approved,
	}
}

func (b *VenueBuilder) BuildInfra() sqlc.Venues {
	return sqlc.Venues{
		ID:                b.ID,
		OwnerID:           b.OwnerID,
		Name:              b.Name,
		PricePerHourMinor: b.PricePerHourMinor,
		Currency:          b.Currency,
		OpeningHour:       int16(b.OpeningHour),
		ClosingHour:       int16(b.ClosingHour),
		IsApproved:        b.Approved,
		CreatedAt:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}
