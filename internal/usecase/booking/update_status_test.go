package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/audit"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/mocks"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/usecase/booking"
)

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a pending booking", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sink := new(mocks.AuditSink)
		uc := booking.NewUpdateBookingStatus(repo, sink)

		repo.On("GetBookingForBusiness", ctx, uint(7), uint(10)).
			Return(&models.Booking{ID: 7, BusinessID: 10, Status: "PENDING"}, nil).Once()
		repo.On("UpdateBooking", ctx, mock.MatchedBy(func(b *models.Booking) bool {
			return b.Status == "ACCEPTED"
		})).Return(nil).Once()
		sink.On("Dispatch", mock.Anything).Once()

		b, err := uc.Execute(ctx, 10, 7, "ACCEPTED")

		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", b.Status)
		repo.AssertExpectations(t)
	})

	t.Run("re-accepting a declined booking is allowed", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sink := new(mocks.AuditSink)
		uc := booking.NewUpdateBookingStatus(repo, sink)

		repo.On("GetBookingForBusiness", ctx, uint(7), uint(10)).
			Return(&models.Booking{ID: 7, BusinessID: 10, Status: "DECLINED"}, nil).Once()
		repo.On("UpdateBooking", ctx, mock.Anything).Return(nil).Once()
		sink.On("Dispatch", mock.Anything).Once()

		b, err := uc.Execute(ctx, 10, 7, "ACCEPTED")

		require.NoError(t, err)
		assert.Equal(t, "ACCEPTED", b.Status)
	})

	t.Run("rejects a status outside the decision set", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewUpdateBookingStatus(repo, new(mocks.AuditSink))

		b, err := uc.Execute(ctx, 10, 7, "REFUNDED")

		assert.Nil(t, b)
		assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))

		var we httperr.WorkflowError
		require.True(t, errors.As(err, &we))
		assert.Equal(t, "Invalid status", we.Message)

		// the booking row is never touched
		repo.AssertNotCalled(t, "GetBookingForBusiness", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("COMPLETED is not reachable through the endpoint", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewUpdateBookingStatus(repo, new(mocks.AuditSink))

		_, err := uc.Execute(ctx, 10, 7, "COMPLETED")

		assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
	})

	t.Run("booking not owned by the business", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewUpdateBookingStatus(repo, new(mocks.AuditSink))

		repo.On("GetBookingForBusiness", ctx, uint(7), uint(10)).
			Return(nil, errors.New("record not found")).Once()

		_, err := uc.Execute(ctx, 10, 7, "DECLINED")

		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}

// The status-change path emits no customer notification: the use case
// has no notification dependency at all. This test pins that behavior
// so a future notifier wire-up is a deliberate change, not an accident.
func TestUpdateBookingStatusEmitsNoNotification(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.BookingRepository)
	sink := new(mocks.AuditSink)
	uc := booking.NewUpdateBookingStatus(repo, sink)

	repo.On("GetBookingForBusiness", ctx, uint(3), uint(2)).
		Return(&models.Booking{ID: 3, BusinessID: 2, Status: "PENDING"}, nil).Once()
	repo.On("UpdateBooking", ctx, mock.Anything).Return(nil).Once()

	var dispatched []string
	sink.On("Dispatch", mock.Anything).Run(func(args mock.Arguments) {
		ev := args.Get(0).(audit.Event)
		dispatched = append(dispatched, ev.Action)
	}).Once()

	_, err := uc.Execute(ctx, 2, 3, "DECLINED")

	require.NoError(t, err)
	assert.Equal(t, []string{"booking_status_changed"}, dispatched)
}
