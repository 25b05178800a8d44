//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/principal"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/shared"
	"turfbook/tests/common/builder"
	commandsmock "turfbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *txMocks
	gateway  *commandsmock.MockPaymentGateway
	verifier *commandsmock.MockSignatureVerifier
	uc       commands.ReservationCommands

	payer principal.Principal
	venue *builder.VenueBuilder
}

func TestReservationTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationTestSuite))
}

func (s *ReservationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.verifier = commandsmock.NewMockSignatureVerifier(s.ctrl)
	s.uc = commands.NewReservationUseCase(
		s.m.uow,
		s.gateway,
		s.verifier,
		booking.NewHourlyPriceCalculator(),
		s.m.clock,
		discardLogger(),
	)
	s.payer = builder.NewPrincipalBuilder().Build()
	s.venue = builder.NewVenueBuilder().WithPrice(120000, "THB")
}

func (s *ReservationTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectFreeSlots stubs the precheck for slots at consecutive hours of the suite venue.
func (s *ReservationTestSuite) expectFreeSlots(ids ...uuid.UUID) {
	for i, id := range ids {
		snap := builder.NewSlotBuilder().WithID(id).WithVenueID(s.venue.ID).WithHours(8+i, 9+i).BuildSnapshot()
		s.m.slots.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), id).Return(true, nil)
		s.m.reads.EXPECT().SlotByID(gomock.Any(), id).Return(snap, nil)
	}
	s.m.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID).Return(s.venue.BuildSnapshot(), nil)
}

func (s *ReservationTestSuite) assertMarked(err, mark error) {
	s.Require().Error(err)
	s.True(errs.Is(err, mark), "expected %v to carry mark %v", err, mark)
}

// =============================================================================
// Initiate
// =============================================================================

func (s *ReservationTestSuite) TestInitiate_Success() {
	slotA, slotB := uuid.New(), uuid.New()
	s.expectFreeSlots(slotA, slotB)

	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, amount booking.Money, receipt string) (booking.OrderID, error) {
			s.Equal(int64(240000), amount.Minor())
			s.Equal("THB", amount.Currency())
			s.NotEmpty(receipt)
			return "order_1", nil
		})

	var created []*booking.Booking
	s.m.bookings.EXPECT().CreatePending(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
			created = append(created, b)
			return nil
		}).Times(2)
	s.m.expectEvent(commands.TopicBookingPending).
		Do(func(_ context.Context, _ any, _, _ string, payload []byte, runAt time.Time) {
			var ev commands.BookingEvent
			s.Require().NoError(json.Unmarshal(payload, &ev))
			s.Equal("order_1", ev.OrderID)
			s.ElementsMatch([]uuid.UUID{slotA, slotB}, ev.SlotIDs)
			s.Equal(int64(240000), ev.AmountMinor)
			s.Equal(testNow, runAt)
		})

	res, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{slotA, slotB}})

	s.Require().NoError(err)
	s.Equal(booking.OrderID("order_1"), res.OrderID)
	s.Equal(int64(240000), res.Amount.Minor())
	s.Len(res.BookingIDs, 2)
	s.False(res.Replayed)
	s.Require().Len(created, 2)
	for _, b := range created {
		s.Equal(booking.StatusPending, b.Status())
		s.Equal(s.payer.ID(), b.PayerID())
		s.Equal(s.venue.ID, b.VenueID())
		s.Equal(int64(120000), b.Price().Minor())
	}
}

func (s *ReservationTestSuite) TestInitiate_RejectsBeforeTouchingStorage() {
	dup := uuid.New()
	testCases := []struct {
		name  string
		actor principal.Principal
		ids   []uuid.UUID
		want  error
		mark  error
	}{
		{name: "anonymous caller", actor: principal.Principal{}, ids: []uuid.UUID{uuid.New()}, want: commands.ErrNotAuthenticated, mark: errs.ErrUnauthorized},
		{name: "empty cart", actor: s.payer, ids: nil, want: commands.ErrEmptyCart, mark: errs.ErrValidation},
		{name: "duplicate slot", actor: s.payer, ids: []uuid.UUID{dup, dup}, want: commands.ErrDuplicateSlot, mark: errs.ErrValidation},
		{name: "nil slot id", actor: s.payer, ids: []uuid.UUID{uuid.Nil}, want: commands.ErrSlotNotFound, mark: errs.ErrNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res, err := s.uc.Initiate(context.Background(), tc.actor, commands.InitiateRequest{SlotIDs: tc.ids})
			s.Nil(res)
			s.ErrorIs(err, tc.want)
			s.assertMarked(err, tc.mark)
		})
	}
}

func (s *ReservationTestSuite) TestInitiate_SlotAlreadyBooked() {
	id := uuid.New()
	s.m.slots.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), id).Return(false, nil)

	_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}})

	s.ErrorIs(err, commands.ErrSlotUnavailable)
	s.assertMarked(err, errs.ErrConflict)
}

func (s *ReservationTestSuite) TestInitiate_UnknownSlot() {
	id := uuid.New()
	s.m.slots.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), id).Return(false, notFound())

	_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}})

	s.ErrorIs(err, commands.ErrSlotNotFound)
}

func (s *ReservationTestSuite) TestInitiate_MixedVenues() {
	a, b := uuid.New(), uuid.New()
	s.m.slots.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	s.m.reads.EXPECT().SlotByID(gomock.Any(), a).
		Return(builder.NewSlotBuilder().WithID(a).WithVenueID(s.venue.ID).BuildSnapshot(), nil)
	s.m.reads.EXPECT().SlotByID(gomock.Any(), b).
		Return(builder.NewSlotBuilder().WithID(b).BuildSnapshot(), nil)
	s.m.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID).Return(s.venue.BuildSnapshot(), nil)

	_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{a, b}})

	s.ErrorIs(err, commands.ErrMixedVenues)
}

func (s *ReservationTestSuite) TestInitiate_UnapprovedVenueIsHidden() {
	id := uuid.New()
	s.venue.AsUnapproved()
	s.m.slots.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), id).Return(true, nil)
	s.m.reads.EXPECT().SlotByID(gomock.Any(), id).
		Return(builder.NewSlotBuilder().WithID(id).WithVenueID(s.venue.ID).BuildSnapshot(), nil)
	s.m.reads.EXPECT().VenueByID(gomock.Any(), s.venue.ID).Return(s.venue.BuildSnapshot(), nil)

	_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}})

	s.ErrorIs(err, commands.ErrVenueNotFound)
}

func (s *ReservationTestSuite) TestInitiate_GatewayFailureCreatesNothing() {
	id := uuid.New()
	s.expectFreeSlots(id)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(booking.OrderID(""), errors.New("provider timeout"))

	res, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}})

	s.Nil(res)
	s.assertMarked(err, errs.ErrGateway)
	s.Contains(err.Error(), "provider timeout")
}

// =============================================================================
// Initiate with Idempotency-Key
// =============================================================================

func (s *ReservationTestSuite) TestInitiate_IdempotencyKeyCompletedOnSuccess() {
	id := uuid.New()
	key := uuid.New()
	s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), testNow.Add(24*time.Hour)).
		Return(true, nil)
	s.expectFreeSlots(id)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.OrderID("order_9"), nil)
	s.m.bookings.EXPECT().CreatePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.idem.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, s.payer.ID(), booking.OrderID("order_9")).Return(nil)
	s.m.expectEvent(commands.TopicBookingPending)

	res, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}, IdempotencyKey: &key})

	s.Require().NoError(err)
	s.Equal(booking.OrderID("order_9"), res.OrderID)
}

func (s *ReservationTestSuite) TestInitiate_IdempotencyKeyReleasedOnFailure() {
	id := uuid.New()
	key := uuid.New()
	s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.expectFreeSlots(id)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.OrderID(""), errors.New("down"))
	s.m.idem.EXPECT().Release(gomock.Any(), gomock.Any(), key, s.payer.ID()).Return(nil)

	_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}, IdempotencyKey: &key})

	s.assertMarked(err, errs.ErrGateway)
}

func (s *ReservationTestSuite) TestInitiate_IdempotencyReplay() {
	a, b := uuid.New(), uuid.New()
	key := uuid.New()

	// first request stores the hash; the retry lists the slots in another order
	var storedHash string
	s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, hash string, _ time.Time) (bool, error) {
			storedHash = hash
			return true, nil
		})
	s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, hash string, _ time.Time) (bool, error) {
			s.Equal(storedHash, hash)
			return false, nil
		})
	s.expectFreeSlots(a, b)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.OrderID("order_r"), nil).Times(1)
	s.m.bookings.EXPECT().CreatePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.m.idem.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, s.payer.ID(), booking.OrderID("order_r")).Return(nil)
	s.m.expectEvent(commands.TopicBookingPending)

	first, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{a, b}, IdempotencyKey: &key})
	s.Require().NoError(err)

	orderID := "order_r"
	s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.payer.ID()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				Key:           key,
				UserID:        s.payer.ID(),
				Status:        shared.IdempotencyCompleted,
				RequestHash:   storedHash,
				ResultOrderID: &orderID,
				ExpiresAt:     testNow.Add(time.Hour),
			}, nil
		})
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), booking.OrderID("order_r")).Return([]*booking.Booking{
		builder.NewBookingBuilder().WithID(first.BookingIDs[0]).WithOrderID(orderID).WithAmount(120000, "THB").BuildDomain(),
		builder.NewBookingBuilder().WithID(first.BookingIDs[1]).WithOrderID(orderID).WithAmount(120000, "THB").BuildDomain(),
	}, nil)

	replay, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{b, a}, IdempotencyKey: &key})

	s.Require().NoError(err)
	s.True(replay.Replayed)
	s.Equal(first.OrderID, replay.OrderID)
	s.Equal(first.Amount.Minor(), replay.Amount.Minor())
	s.ElementsMatch(first.BookingIDs, replay.BookingIDs)
}

func (s *ReservationTestSuite) TestInitiate_IdempotencyConflicts() {
	testCases := []struct {
		name   string
		record func(key uuid.UUID) *shared.IdempotencyRecord
		mark   error
	}{
		{
			name: "different request body",
			record: func(key uuid.UUID) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{Key: key, Status: shared.IdempotencyCompleted, RequestHash: "other", ExpiresAt: testNow.Add(time.Hour)}
			},
			mark: errs.ErrIdempotencyKeyReused,
		},
		{
			name: "first request still running",
			record: func(key uuid.UUID) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{Key: key, Status: shared.IdempotencyProcessing, ExpiresAt: testNow.Add(time.Hour)}
			},
			mark: errs.ErrIdempotencyInProgress,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			id := uuid.New()
			key := uuid.New()
			var hash string
			s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _ string, h string, _ time.Time) (bool, error) {
					hash = h
					return false, nil
				})
			s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.payer.ID()).
				DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
					rec := tc.record(key)
					if rec.RequestHash == "" {
						rec.RequestHash = hash
					}
					return rec, nil
				})

			_, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}, IdempotencyKey: &key})

			s.assertMarked(err, tc.mark)
		})
	}
}

func (s *ReservationTestSuite) TestInitiate_ExpiredIdempotencyKeyIsReclaimed() {
	id := uuid.New()
	key := uuid.New()
	s.m.idem.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.payer.ID()).Return(&shared.IdempotencyRecord{
		Key:         key,
		Status:      shared.IdempotencyCompleted,
		RequestHash: "stale",
		ExpiresAt:   testNow.Add(-time.Minute),
	}, nil)
	s.m.idem.EXPECT().ClaimExpired(gomock.Any(), gomock.Any(), key, s.payer.ID(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.expectFreeSlots(id)
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking.OrderID("order_new"), nil)
	s.m.bookings.EXPECT().CreatePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.idem.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, s.payer.ID(), booking.OrderID("order_new")).Return(nil)
	s.m.expectEvent(commands.TopicBookingPending)

	res, err := s.uc.Initiate(context.Background(), s.payer, commands.InitiateRequest{SlotIDs: []uuid.UUID{id}, IdempotencyKey: &key})

	s.Require().NoError(err)
	s.False(res.Replayed)
}

// =============================================================================
// Confirm
// =============================================================================

func (s *ReservationTestSuite) confirmReq(orderID string) commands.ConfirmRequest {
	return commands.ConfirmRequest{OrderID: orderID, PaymentID: "pay_1", Signature: "sig"}
}

func (s *ReservationTestSuite) TestConfirm_InvalidSignatureFailsClosed() {
	pendingID := uuid.New()
	s.verifier.EXPECT().Verify("order_1", "pay_1", "sig").Return(false)
	s.m.bookings.EXPECT().FailPendingByOrder(gomock.Any(), gomock.Any(), booking.OrderID("order_1"), testNow).
		Return([]uuid.UUID{pendingID}, nil)
	s.m.expectEvent(commands.TopicBookingFailed).
		Do(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) {
			var ev commands.BookingEvent
			s.Require().NoError(json.Unmarshal(payload, &ev))
			s.Equal(commands.ReasonSignatureInvalid, ev.Reason)
			s.Equal([]uuid.UUID{pendingID}, ev.BookingIDs)
			s.False(ev.RefundRequired)
		})

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.Nil(res)
	s.ErrorIs(err, commands.ErrInvalidSignature)
	s.assertMarked(err, errs.ErrUnauthorized)
}

func (s *ReservationTestSuite) TestConfirm_InvalidSignatureStillUnauthorizedWhenStorageFails() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	s.m.bookings.EXPECT().FailPendingByOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.ErrorIs(err, commands.ErrInvalidSignature)
}

func (s *ReservationTestSuite) TestConfirm_SingleSlotConfirmed() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	s.verifier.EXPECT().Verify("order_1", "pay_1", "sig").Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), booking.OrderID("order_1")).Return([]*booking.Booking{b}, nil)
	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), b.SlotID()).Return(true, nil)
	s.m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), b.ID(), booking.PaymentID("pay_1"), testNow).Return(nil)
	s.m.expectEvent(commands.TopicBookingConfirmed)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.Require().NoError(err)
	s.Equal(1, res.ConfirmedCount())
	s.Equal(booking.PaymentID("pay_1"), res.PaymentID)
	s.Require().Len(res.Slots, 1)
	s.Equal(booking.StatusConfirmed, res.Slots[0].Status)
	s.False(res.Slots[0].RefundRequired)
}

func (s *ReservationTestSuite) TestConfirm_LostRaceFlagsRefund() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil)
	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), b.SlotID()).Return(false, nil)
	s.m.bookings.EXPECT().TransitionToFailed(gomock.Any(), gomock.Any(), b.ID(), gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, pid *booking.PaymentID, _ time.Time) error {
			s.Require().NotNil(pid)
			s.Equal(booking.PaymentID("pay_1"), *pid)
			return nil
		})
	s.m.expectEvent(commands.TopicBookingFailed)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.ErrorIs(err, commands.ErrOrderNotConfirmed)
	s.assertMarked(err, errs.ErrConflict)
	s.Require().NotNil(res)
	s.Equal(0, res.ConfirmedCount())
	s.Equal(commands.ReasonSlotUnavailable, res.Slots[0].Reason)
	s.True(res.Slots[0].RefundRequired)
}

func (s *ReservationTestSuite) TestConfirm_PartialSuccess() {
	won := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	lost := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{won, lost}, nil)

	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), won.SlotID()).Return(true, nil)
	s.m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), won.ID(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.expectEvent(commands.TopicBookingConfirmed)

	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), lost.SlotID()).Return(false, nil)
	s.m.bookings.EXPECT().TransitionToFailed(gomock.Any(), gomock.Any(), lost.ID(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.expectEvent(commands.TopicBookingFailed)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.Require().NoError(err)
	s.Equal(1, res.ConfirmedCount())
	s.Require().Len(res.Slots, 2)
	s.Equal(booking.StatusConfirmed, res.Slots[0].Status)
	s.Equal(booking.StatusFailed, res.Slots[1].Status)
	s.True(res.Slots[1].RefundRequired)
}

func (s *ReservationTestSuite) TestConfirm_ReplayIsIdempotent() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").AsConfirmed("pay_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil).Times(2)

	for i := 0; i < 2; i++ {
		res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))
		s.Require().NoError(err)
		s.Equal(1, res.ConfirmedCount())
		s.True(res.Slots[0].Replayed)
	}
}

func (s *ReservationTestSuite) TestConfirm_ReapedBeforeConfirmKeepsRefundTrail() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").AsFailed().BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil)
	s.m.bookings.EXPECT().AttachPaymentRef(gomock.Any(), gomock.Any(), b.ID(), booking.PaymentID("pay_1"), testNow).Return(nil)
	s.m.expectEvent(commands.TopicBookingFailed).
		Do(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) {
			var ev commands.BookingEvent
			s.Require().NoError(json.Unmarshal(payload, &ev))
			s.Equal(commands.ReasonExpired, ev.Reason)
			s.True(ev.RefundRequired)
		})

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.ErrorIs(err, commands.ErrOrderNotConfirmed)
	s.Require().NotNil(res)
	s.True(res.Slots[0].RefundRequired)
	s.Equal(commands.ReasonExpired, res.Slots[0].Reason)
}

func (s *ReservationTestSuite) TestConfirm_ReapedAfterSlotWonReleasesSlot() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	reaped := builder.NewBookingBuilder().WithID(b.ID()).WithSlotID(b.SlotID()).WithOrderID("order_1").AsFailed().BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil)

	gomock.InOrder(
		s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), b.SlotID()).Return(true, nil),
		s.m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), b.ID(), gomock.Any(), gomock.Any()).Return(invalidState()),
		s.m.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(reaped, nil),
		s.m.bookings.EXPECT().AttachPaymentRef(gomock.Any(), gomock.Any(), b.ID(), booking.PaymentID("pay_1"), gomock.Any()).Return(nil),
		s.m.expectEvent(commands.TopicBookingFailed),
		s.m.slots.EXPECT().MarkAvailable(gomock.Any(), gomock.Any(), b.SlotID()).Return(nil),
	)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.ErrorIs(err, commands.ErrOrderNotConfirmed)
	s.Equal(booking.StatusFailed, res.Slots[0].Status)
	s.True(res.Slots[0].RefundRequired)
}

func (s *ReservationTestSuite) TestConfirm_UnknownOrder() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound())

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_x"))

	s.Nil(res)
	s.ErrorIs(err, commands.ErrOrderNotFound)
	s.assertMarked(err, errs.ErrNotFound)
}

func (s *ReservationTestSuite) TestConfirm_ReplayOfLostRaceKeepsReason() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").AsFailed().WithPaymentID("pay_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.ErrorIs(err, commands.ErrOrderNotConfirmed)
	s.Require().NotNil(res)
	s.Require().Len(res.Slots, 1)
	s.Equal(booking.StatusFailed, res.Slots[0].Status)
	s.Equal(commands.ReasonSlotUnavailable, res.Slots[0].Reason)
	s.True(res.Slots[0].RefundRequired)
	s.True(res.Slots[0].Replayed)
}

func (s *ReservationTestSuite) TestConfirm_StorageErrorKeepsSettledSiblings() {
	first := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	broken := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	last := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*booking.Booking{first, broken, last}, nil)

	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), first.SlotID()).Return(true, nil)
	s.m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), first.ID(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), broken.SlotID()).Return(false, errors.New("connection reset"))
	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), last.SlotID()).Return(true, nil)
	s.m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), last.ID(), gomock.Any(), gomock.Any()).Return(nil)
	s.m.expectEvent(commands.TopicBookingConfirmed).Times(2)

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.assertMarked(err, errs.ErrDatabaseOperationFailed)
	s.Require().NotNil(res)
	s.Equal(2, res.ConfirmedCount())
	s.Require().Len(res.Slots, 3)
	s.Equal(booking.StatusConfirmed, res.Slots[0].Status)
	s.Equal(broken.ID(), res.Slots[1].BookingID)
	s.Equal(booking.StatusPending, res.Slots[1].Status)
	s.Equal(commands.ReasonStorageError, res.Slots[1].Reason)
	s.False(res.Slots[1].RefundRequired)
	s.Equal(booking.StatusConfirmed, res.Slots[2].Status)
}

func (s *ReservationTestSuite) TestConfirm_StorageErrorStopsTheOrder() {
	b := builder.NewBookingBuilder().WithOrderID("order_1").BuildDomain()
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*booking.Booking{b}, nil)
	s.m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), b.SlotID()).Return(false, errors.New("deadline exceeded"))

	res, err := s.uc.Confirm(context.Background(), s.confirmReq("order_1"))

	s.Nil(res)
	s.assertMarked(err, errs.ErrDatabaseOperationFailed)
}

// Two orders race for one slot: the slot CAS admits exactly one of them.
func TestConfirm_NoDoubleBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	verifier := commandsmock.NewMockSignatureVerifier(ctrl)
	uc := commands.NewReservationUseCase(m.uow, commandsmock.NewMockPaymentGateway(ctrl), verifier,
		booking.NewHourlyPriceCalculator(), m.clock, discardLogger())

	slotID := uuid.New()
	first := builder.NewBookingBuilder().WithSlotID(slotID).WithOrderID("order_a").BuildDomain()
	second := builder.NewBookingBuilder().WithSlotID(slotID).WithOrderID("order_b").BuildDomain()

	occupied := false
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), booking.OrderID("order_a")).Return([]*booking.Booking{first}, nil)
	m.bookings.EXPECT().FindByOrder(gomock.Any(), gomock.Any(), booking.OrderID("order_b")).Return([]*booking.Booking{second}, nil)
	m.slots.EXPECT().MarkOccupied(gomock.Any(), gomock.Any(), slotID).
		DoAndReturn(func(context.Context, any, uuid.UUID) (bool, error) {
			if occupied {
				return false, nil
			}
			occupied = true
			return true, nil
		}).Times(2)
	m.bookings.EXPECT().TransitionToConfirmed(gomock.Any(), gomock.Any(), first.ID(), gomock.Any(), gomock.Any()).Return(nil)
	m.bookings.EXPECT().TransitionToFailed(gomock.Any(), gomock.Any(), second.ID(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectEvent(commands.TopicBookingConfirmed)
	m.expectEvent(commands.TopicBookingFailed)

	resA, errA := uc.Confirm(context.Background(), commands.ConfirmRequest{OrderID: "order_a", PaymentID: "pay_a", Signature: "s"})
	resB, errB := uc.Confirm(context.Background(), commands.ConfirmRequest{OrderID: "order_b", PaymentID: "pay_b", Signature: "s"})

	require.NoError(t, errA)
	assert.Equal(t, 1, resA.ConfirmedCount())
	assert.ErrorIs(t, errB, commands.ErrOrderNotConfirmed)
	assert.Equal(t, 0, resB.ConfirmedCount())
	assert.True(t, resB.Slots[0].RefundRequired)
}
