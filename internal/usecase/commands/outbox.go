package commands

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"
)

const maxRelayBackoff = 5 * time.Minute

type RelayResult struct {
	Sent    int
	Retried int
	Dropped int
}

// OutboxCommands relays queued notification jobs to the message broker.
// Delivery is at least once; consumers dedupe on the message id.
type OutboxCommands interface {
	RelayDue(ctx context.Context) (*RelayResult, error)
}

type outboxUseCaseImpl struct {
	uow         shared.UnitOfWork
	publisher   EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger
}

func NewOutboxUseCase(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, batchSize, maxAttempts int32, logger *slog.Logger) OutboxCommands {
	return &outboxUseCaseImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (uc *outboxUseCaseImpl) RelayDue(ctx context.Context) (*RelayResult, error) {
	var result RelayResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = RelayResult{}
		now := uc.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, uc.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := uc.publisher.Publish(ctx, job.Topic, job.Payload, job.ID.String())
			if pubErr == nil {
				if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.JobSent, nil, now); err != nil {
					return err
				}
				result.Sent++
				continue
			}

			msg := pubErr.Error()
			status, runAt := shared.JobQueued, now.Add(relayBackoff(job.Attempts))
			if job.Attempts+1 >= uc.maxAttempts {
				status, runAt = shared.JobFailed, now
				result.Dropped++
				uc.logger.Error("outbox job dropped",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", job.Attempts+1,
					"error", msg)
			} else {
				result.Retried++
			}
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, &msg, runAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &result, nil
}

func relayBackoff(attempts int32) time.Duration {
	if attempts > 8 {
		return maxRelayBackoff
	}
	return min(time.Duration(1<<attempts)*time.Second, maxRelayBackoff)
}
