package components

import (
	"log/slog"

	"turfbook/internal/domain/booking"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewSlotUseCase,
		NewReaperUseCase,
		NewOutboxUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewPrincipalResolver,
	),
)

func NewReaperUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.ReaperCommands {
	return commands.NewReaperUseCase(uow, clk, cfg.Reaper.PendingTTL, cfg.Reaper.BatchSize, logger)
}

func NewOutboxUseCase(uow shared.UnitOfWork, publisher commands.EventPublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.OutboxCommands {
	return commands.NewOutboxUseCase(uow, publisher, clk, cfg.Outbox.BatchSize, cfg.Outbox.MaxAttempts, logger)
}
