package bootstrap

import (
	"context"
	"log/slog"

	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*worker.Scheduler) {}),
)

func NewScheduler(lc fx.Lifecycle, cfg config.Config, reaper commands.ReaperCommands, outbox commands.OutboxCommands, logger *slog.Logger) *worker.Scheduler {
	var tasks []worker.Task
	if cfg.Reaper.Enabled {
		tasks = append(tasks, worker.ReaperTask(reaper, cfg.Reaper.Interval))
	}
	if cfg.Outbox.Enabled {
		tasks = append(tasks, worker.OutboxTask(outbox, cfg.Outbox.Interval))
	}

	s := worker.NewScheduler(logger, tasks...)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			s.Stop()
			return nil
		},
	})
	return s
}
