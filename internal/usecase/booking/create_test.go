package booking_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/mocks"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/usecase/booking"
)

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	input := booking.CreateBookingInput{
		CustomerID:  1,
		BusinessID:  10,
		ServiceName: "Haircut",
		BarberName:  "Jo",
		Date:        "2026-09-15",
		Time:        "14:30",
		Amount:      20.00,
	}

	t.Run("creates pending booking and notifies customer", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		sink := new(mocks.AuditSink)
		uc := booking.NewCreateBooking(repo, sender, sink)

		repo.On("GetCustomerByID", ctx, uint(1)).
			Return(&models.Customer{ID: 1, Name: "Ada", Email: "ada@example.com"}, nil).Once()
		repo.On("CreateBooking", ctx, mock.MatchedBy(func(b *models.Booking) bool {
			return b.Status == "PENDING" &&
				b.CustomerName == "Ada" &&
				b.CustomerEmail == "ada@example.com" &&
				b.ServiceName == "Haircut"
		})).Return(nil).Once()
		sender.On("Notify", ctx, models.RecipientCustomer, uint(1),
			mock.Anything, mock.MatchedBy(func(msg string) bool {
				return strings.Contains(msg, "Haircut")
			}), models.NotificationBookingPending).Return(nil).Once()
		sink.On("Dispatch", mock.Anything).Once()

		b, err := uc.Execute(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", b.Status)
		assert.Equal(t, uint(10), b.BusinessID)
		repo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("stale token for deleted customer", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		sink := new(mocks.AuditSink)
		uc := booking.NewCreateBooking(repo, sender, sink)

		repo.On("GetCustomerByID", ctx, uint(1)).
			Return(nil, errors.New("record not found")).Once()

		b, err := uc.Execute(ctx, input)

		assert.Nil(t, b)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
		repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		sender.AssertNotCalled(t, "Notify",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed date", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewCreateBooking(repo, new(mocks.NotificationSender), new(mocks.AuditSink))

		bad := input
		bad.Date = "15/09/2026"

		_, err := uc.Execute(ctx, bad)

		assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
		repo.AssertNotCalled(t, "GetCustomerByID", mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not undo the booking", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		sink := new(mocks.AuditSink)
		uc := booking.NewCreateBooking(repo, sender, sink)

		repo.On("GetCustomerByID", ctx, uint(1)).
			Return(&models.Customer{ID: 1, Name: "Ada", Email: "ada@example.com"}, nil).Once()
		repo.On("CreateBooking", ctx, mock.Anything).Return(nil).Once()
		sender.On("Notify", ctx, models.RecipientCustomer, uint(1),
			mock.Anything, mock.Anything, models.NotificationBookingPending).
			Return(errors.New("notification store down")).Once()
		sink.On("Dispatch", mock.Anything).Once()

		b, err := uc.Execute(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", b.Status)
	})
}
