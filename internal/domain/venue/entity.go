package venue

import (
	"errors"

	"github.com/google/uuid"
)

var ErrVenueNotApproved = errors.New("venue is not approved")

// Venue is read-only here; venue CRUD lives outside this service.
type Venue struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	name              string
	pricePerHourMinor int64
	currency          string
	openingHour       int
	closingHour       int
	approved          bool
}

func ReconstructVenue(
	id, ownerID uuid.UUID,
	name string,
	pricePerHourMinor int64,
	currency string,
	openingHour, closingHour int,
	approved bool,
) *Venue {
	return &Venue{
		id:                id,
		ownerID:           ownerID,
		name:              name,
		pricePerHourMinor: pricePerHourMinor,
		currency:          currency,
		openingHour:       openingHour,
		closingHour:       closingHour,
		approved:          approved,
	}
}

func (v *Venue) EnsureBookable() error {
	if !v.approved {
		return ErrVenueNotApproved
	}
	return nil
}

func (v *Venue) ID() uuid.UUID            { return v.id }
func (v *Venue) OwnerID() uuid.UUID       { return v.ownerID }
func (v *Venue) Name() string             { return v.name }
func (v *Venue) PricePerHourMinor() int64 { return v.pricePerHourMinor }
func (v *Venue) Currency() string         { return v.currency }
func (v *Venue) OpeningHour() int         { return v.openingHour }
func (v *Venue) ClosingHour() int         { return v.closingHour }
func (v *Venue) IsApproved() bool         { return v.approved }
