//go:build unit

package repository_test

import (
	"context"
	"testing"

	"turfbook/internal/infra"
	"turfbook/internal/infra/repository"
	sqlc "turfbook/internal/infra/sqlc/generated"
	"turfbook/internal/usecase/shared"
	repositorymock "turfbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
		Kind:    "booking_event",
		Topic:   "booking.confirmed",
		Payload: []byte(`{"a":1}`),
		RunAt:   pgtype.Timestamptz{Time: now, Valid: true},
		Status:  shared.JobQueued,
	}).Return(nil)

	require.NoError(t, repo.CreateJob(ctx, mockDB, "booking_event", "booking.confirmed", []byte(`{"a":1}`), now))

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errDBConnectionLost)
	err := repo.CreateJob(ctx, mockDB, "booking_event", "booking.confirmed", nil, now)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestNotificationRepository_ClaimAndUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	row := sqlc.NotificationJobs{ID: uuid.New(), Kind: "booking_event", Topic: "booking.failed", Payload: []byte(`{}`), Attempts: 2}
	mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgtype.Timestamptz{Time: now, Valid: true},
		BatchSize: 10,
	}).Return([]sqlc.NotificationJobs{row}, nil)

	jobs, err := repo.ClaimDue(ctx, mockDB, now, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, int32(2), jobs[0].Attempts)

	msg := "nack"
	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, sqlc.UpdateNotificationJobStatusParams{
		ID:        row.ID,
		Status:    shared.JobQueued,
		LastError: pgtype.Text{String: msg, Valid: true},
		RunAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}).Return(nil)
	require.NoError(t, repo.UpdateJobStatus(ctx, mockDB, row.ID, shared.JobQueued, &msg, now))
}
