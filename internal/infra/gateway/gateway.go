package gateway

import (
	"log/slog"

	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
)

const (
	ProviderOmise   = "omise"
	ProviderSandbox = "sandbox"
)

// New selects the adapter named by PAYMENT_PROVIDER.
func New(cfg config.PaymentConfig, logger *slog.Logger) (commands.PaymentGateway, error) {
	switch cfg.Provider {
	case ProviderOmise:
		client, err := NewOmiseClient(cfg.OmisePublicKey, cfg.OmiseSecretKey)
		if err != nil {
			return nil, err
		}
		return NewOmiseGateway(client, cfg.OmiseSourceType, logger), nil
	case ProviderSandbox, "":
		return NewSandboxGateway(), nil
	default:
		return nil, errs.Newf("unknown payment provider %q", cfg.Provider)
	}
}
