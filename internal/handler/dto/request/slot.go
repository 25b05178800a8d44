package request

import (
	"time"

	"turfbook/internal/domain/slot"
	"turfbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReconcileSlotsRequest struct {
	// From is a YYYY-MM-DD date; empty means today.
	From string `json:"from"`
	Days int    `json:"days" binding:"required,min=1"`
}

func (r ReconcileSlotsRequest) ToCommand(venueID uuid.UUID) (commands.ReconcileRequest, error) {
	req := commands.ReconcileRequest{VenueID: venueID, Days: r.Days}
	if r.Days > slot.MaxReconcileDays {
		return req, slot.ErrInvalidRange
	}
	if r.From != "" {
		from, err := time.Parse(time.DateOnly, r.From)
		if err != nil {
			return req, err
		}
		req.From = from
	}
	return req, nil
}
