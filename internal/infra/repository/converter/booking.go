package converter

import (
	"turfbook/internal/domain/booking"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreatePendingBookingParams {
	return sqlc.CreatePendingBookingParams{
		ID:          b.ID(),
		PayerID:     b.PayerID(),
		VenueID:     b.VenueID(),
		SlotID:      b.SlotID(),
		OrderID:     b.OrderID().String(),
		AmountMinor: b.Price().Minor(),
		Currency:    b.Price().Currency(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(row.AmountMinor, row.Currency)
	if err != nil {
		return nil, err
	}

	var paymentID *booking.PaymentID
	if row.PaymentID.Valid {
		pid := booking.PaymentID(row.PaymentID.String)
		paymentID = &pid
	}

	return booking.ReconstructBooking(
		row.ID,
		row.PayerID,
		row.VenueID,
		row.SlotID,
		status,
		booking.OrderID(row.OrderID),
		paymentID,
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PaymentIDToPgtype(pid *booking.PaymentID) pgtype.Text {
	if pid == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(pid.String())
}
