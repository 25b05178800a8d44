//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/shared"
	commandsmock "turfbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRelayDue(t *testing.T) {
	t.Run("published jobs are marked sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		pub := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewOutboxUseCase(m.uow, pub, m.clock, 50, 5, discardLogger())

		job := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicBookingConfirmed, Payload: []byte(`{}`)}
		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), testNow, int32(50)).Return([]shared.NotificationJob{job}, nil)
		pub.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload, job.ID.String()).Return(nil)
		m.notes.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, shared.JobSent, gomock.Nil(), testNow).Return(nil)

		res, err := uc.RelayDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, commands.RelayResult{Sent: 1}, *res)
	})

	t.Run("failed publish is retried with backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		pub := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewOutboxUseCase(m.uow, pub, m.clock, 50, 5, discardLogger())

		job := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicBookingFailed, Attempts: 2}
		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
		m.notes.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, shared.JobQueued, gomock.Any(), testNow.Add(4*time.Second)).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ string, lastErr *string, _ time.Time) error {
				require.NotNil(t, lastErr)
				assert.Equal(t, "channel closed", *lastErr)
				return nil
			})

		res, err := uc.RelayDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, commands.RelayResult{Retried: 1}, *res)
	})

	t.Run("job is dropped after the last attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		pub := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewOutboxUseCase(m.uow, pub, m.clock, 50, 5, discardLogger())

		job := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicBookingFailed, Attempts: 4}
		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("nack"))
		m.notes.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, shared.JobFailed, gomock.Any(), testNow).Return(nil)

		res, err := uc.RelayDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, commands.RelayResult{Dropped: 1}, *res)
	})
}
