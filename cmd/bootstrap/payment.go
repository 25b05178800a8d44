package bootstrap

import (
	"log/slog"

	"turfbook/internal/infra/gateway"
	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/signature"
	"turfbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
		fx.Annotate(
			NewSignatureVerifier,
			fx.As(new(commands.SignatureVerifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (commands.PaymentGateway, error) {
	return gateway.New(cfg.Payment, logger)
}

func NewSignatureVerifier(cfg config.Config) *signature.Verifier {
	return signature.NewVerifier(cfg.Payment.SignatureSecret)
}
