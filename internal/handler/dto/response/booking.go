package response

import (
	"time"

	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type InitiateBookingResponse struct {
	OrderID     string      `json:"orderId"`
	AmountMinor int64       `json:"amountMinor"`
	Currency    string      `json:"currency"`
	BookingIDs  []uuid.UUID `json:"bookingIds"`
	Replayed    bool        `json:"replayed"`
}

func FromInitiateResult(r *commands.InitiateResult) *InitiateBookingResponse {
	return &InitiateBookingResponse{
		OrderID:     r.OrderID.String(),
		AmountMinor: r.Amount.Minor(),
		Currency:    r.Amount.Currency(),
		BookingIDs:  r.BookingIDs,
		Replayed:    r.Replayed,
	}
}

type SlotOutcomeResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	SlotID         uuid.UUID `json:"slotId"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	RefundRequired bool      `json:"refundRequired"`
	Replayed       bool      `json:"replayed"`
}

type ConfirmBookingResponse struct {
	OrderID   string                `json:"orderId"`
	PaymentID string                `json:"paymentId"`
	Confirmed int                   `json:"confirmed"`
	Slots     []SlotOutcomeResponse `json:"slots"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmBookingResponse {
	resp := &ConfirmBookingResponse{
		OrderID:   r.OrderID.String(),
		PaymentID: r.PaymentID.String(),
		Confirmed: r.ConfirmedCount(),
		Slots:     make([]SlotOutcomeResponse, 0, len(r.Slots)),
	}
	for _, s := range r.Slots {
		resp.Slots = append(resp.Slots, SlotOutcomeResponse{
			BookingID:      s.BookingID,
			SlotID:         s.SlotID,
			Status:         s.Status.String(),
			Reason:         string(s.Reason),
			RefundRequired: s.RefundRequired,
			Replayed:       s.Replayed,
		})
	}
	return resp
}

type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	VenueID     uuid.UUID  `json:"venueId"`
	VenueName   string     `json:"venueName"`
	SlotID      uuid.UUID  `json:"slotId"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Status      string     `json:"status"`
	OrderID     string     `json:"orderId"`
	PaymentID   *string    `json:"paymentId,omitempty"`
	AmountMinor int64      `json:"amountMinor"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		VenueID:     v.VenueID,
		VenueName:   v.VenueName,
		SlotID:      v.SlotID,
		StartsAt:    v.StartsAt,
		EndsAt:      v.EndsAt,
		Status:      v.Status,
		OrderID:     v.OrderID,
		PaymentID:   v.PaymentID,
		AmountMinor: v.AmountMinor,
		Currency:    v.Currency,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{Items: make([]*BookingResponse, len(views))}
	for i, v := range views {
		resp.Items[i] = FromBookingView(v)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
