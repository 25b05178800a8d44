package slot

import "github.com/google/uuid"

// Slot is one bookable hour at a venue. booked is the occupancy flag.
type Slot struct {
	id      uuid.UUID
	venueID uuid.UUID
	window  Window
	booked  bool
}

func ReconstructSlot(id, venueID uuid.UUID, window Window, booked bool) *Slot {
	return &Slot{
		id:      id,
		venueID: venueID,
		window:  window,
		booked:  booked,
	}
}

func (s *Slot) IsAvailable() bool {
	return !s.booked
}

func (s *Slot) ID() uuid.UUID      { return s.id }
func (s *Slot) VenueID() uuid.UUID { return s.venueID }
func (s *Slot) Window() Window     { return s.window }
func (s *Slot) IsBooked() bool     { return s.booked }
