package response

import (
	"time"

	"turfbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReconcileSlotsResponse struct {
	VenueID  uuid.UUID `json:"venueId"`
	From     string    `json:"from"`
	Days     int       `json:"days"`
	Inserted int64     `json:"inserted"`
	Deleted  int64     `json:"deleted"`
	Retained int       `json:"retained"`
	Kept     int       `json:"kept"`
}

func FromReconcileResult(r *commands.ReconcileResult) *ReconcileSlotsResponse {
	return &ReconcileSlotsResponse{
		VenueID:  r.VenueID,
		From:     r.From.Format(time.DateOnly),
		Days:     r.Days,
		Inserted: r.Inserted,
		Deleted:  r.Deleted,
		Retained: r.Retained,
		Kept:     r.Kept,
	}
}
