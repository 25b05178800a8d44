package gateway

import (
	"context"
	"log/slog"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/errs"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

var ErrMissingCredentials = errs.New("omise public and secret keys are required")

// OmiseGateway opens an order as an Omise source; the source id is the order id.
type OmiseGateway struct {
	client     *omise.Client
	sourceType string
	logger     *slog.Logger
}

func NewOmiseClient(publicKey, secretKey string) (*omise.Client, error) {
	if publicKey == "" || secretKey == "" {
		return nil, ErrMissingCredentials
	}
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, errs.Wrap(err, "create omise client")
	}
	c.SetDebug(false)
	return c, nil
}

func NewOmiseGateway(client *omise.Client, sourceType string, logger *slog.Logger) *OmiseGateway {
	if sourceType == "" {
		sourceType = "promptpay"
	}
	return &OmiseGateway{client: client, sourceType: sourceType, logger: logger}
}

func (g *OmiseGateway) CreateOrder(ctx context.Context, amount booking.Money, receiptRef string) (booking.OrderID, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Mark(err, errs.ErrGateway)
	}

	src := &omise.Source{}
	req := &operations.CreateSource{
		Type:     g.sourceType,
		Amount:   amount.Minor(),
		Currency: amount.Currency(),
	}
	if err := g.client.Do(src, req); err != nil {
		g.logger.Warn("omise source creation failed",
			slog.String("receipt", receiptRef),
			slog.String("error", err.Error()))
		return "", errs.Mark(errs.Wrap(err, "create omise source"), errs.ErrGateway)
	}

	orderID, err := booking.NewOrderID(src.ID)
	if err != nil {
		g.logger.Warn("omise source without id",
			slog.String("receipt", receiptRef))
		return "", errs.Mark(errs.Wrap(err, "omise source"), errs.ErrGateway)
	}

	g.logger.Info("omise source created",
		slog.String("receipt", receiptRef),
		slog.String("source_id", src.ID))
	return orderID, nil
}
