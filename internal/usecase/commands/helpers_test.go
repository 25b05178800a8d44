//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/shared"
	sharedmock "turfbook/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// txMocks wires a MockUnitOfWork whose Within runs fn against one MockTx.
type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	slots    *sharedmock.MockSlotRepository
	bookings *sharedmock.MockBookingLedger
	idem     *sharedmock.MockIdempotencyRepository
	notes    *sharedmock.MockNotificationRepository
	clock    *clock.MockClock
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		slots:    sharedmock.NewMockSlotRepository(ctrl),
		bookings: sharedmock.NewMockBookingLedger(ctrl),
		idem:     sharedmock.NewMockIdempotencyRepository(ctrl),
		notes:    sharedmock.NewMockNotificationRepository(ctrl),
		clock:    clock.NewMockClock(testNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idem).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notes).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

// expectEvent expects one outbox job on topic.
func (m *txMocks) expectEvent(topic string) *gomock.Call {
	return m.notes.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "booking_event", topic, gomock.Any(), gomock.Any()).Return(nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func invalidState() error {
	return infra.WrapRepoErr("booking is not pending", nil, infra.KindInvalidState)
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
