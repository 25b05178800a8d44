package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"turfbook/internal/usecase/commands"
)

// Task is a background job run once at start and then on every tick.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	tasks    []Task
	logger   *slog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewScheduler(logger *slog.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("starting background scheduler", "tasks", len(s.tasks))
	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.loop(ctx, task)
	}
}

// Stop waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	defer s.wg.Done()

	s.runOnce(ctx, task)

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx, task)
		case <-s.stopChan:
			s.logger.Info("background task stopped", "task", task.Name)
			return
		case <-ctx.Done():
			s.logger.Info("background task cancelled", "task", task.Name)
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, task Task) {
	start := time.Now()
	if err := task.Run(ctx); err != nil {
		s.logger.Error("background task failed",
			"task", task.Name,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error())
	}
}

func ReaperTask(reaper commands.ReaperCommands, interval time.Duration) Task {
	return Task{
		Name:     "booking_reaper",
		Interval: interval,
		Run: func(ctx context.Context) error {
			_, err := reaper.ReapStale(ctx)
			return err
		},
	}
}

func OutboxTask(outbox commands.OutboxCommands, interval time.Duration) Task {
	return Task{
		Name:     "outbox_relay",
		Interval: interval,
		Run: func(ctx context.Context) error {
			_, err := outbox.RelayDue(ctx)
			return err
		},
	}
}
