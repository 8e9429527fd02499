package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/mocks"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/usecase/review"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	input := review.CreateReviewInput{
		CustomerID: 1,
		BookingID:  5,
		Rating:     5,
		Comment:    "Great service!",
	}

	completed := &models.Booking{
		ID:           5,
		BusinessID:   10,
		CustomerID:   1,
		CustomerName: "Ada",
		Status:       "COMPLETED",
	}

	t.Run("creates review and notifies the business", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		sink := new(mocks.AuditSink)
		uc := review.NewCreateReview(repo, sender, sink)

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).Return(completed, nil).Once()
		repo.On("HasReviewForBooking", ctx, uint(5)).Return(false, nil).Once()
		repo.On("CreateReview", ctx, mock.MatchedBy(func(rv *models.Review) bool {
			return rv.BookingID == 5 && rv.BusinessID == 10 && rv.Rating == 5
		})).Return(nil).Once()
		sender.On("Notify", ctx, models.RecipientBusiness, uint(10),
			mock.Anything, mock.Anything, models.NotificationNewReview).Return(nil).Once()
		sink.On("Dispatch", mock.Anything).Once()

		rv, err := uc.Execute(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, 5, rv.Rating)
		assert.Equal(t, "Great service!", rv.Comment)
		repo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("rating outside [1,5]", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := review.NewCreateReview(repo, new(mocks.NotificationSender), new(mocks.AuditSink))

		for _, rating := range []int{0, -1, 6, 100} {
			bad := input
			bad.Rating = rating

			_, err := uc.Execute(ctx, bad)
			assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument), "rating %d", rating)
		}

		repo.AssertNotCalled(t, "GetBookingForCustomer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("booking missing or not owned", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := review.NewCreateReview(repo, new(mocks.NotificationSender), new(mocks.AuditSink))

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).
			Return(nil, errors.New("record not found")).Once()

		_, err := uc.Execute(ctx, input)

		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

		var we httperr.WorkflowError
		require.True(t, errors.As(err, &we))
		assert.Equal(t, "Booking not found", we.Message)
	})

	t.Run("booking not completed", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := review.NewCreateReview(repo, new(mocks.NotificationSender), new(mocks.AuditSink))

		pending := *completed
		pending.Status = "PENDING"

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).Return(&pending, nil).Once()

		_, err := uc.Execute(ctx, input)

		assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))

		var we httperr.WorkflowError
		require.True(t, errors.As(err, &we))
		assert.Equal(t, "You can only review completed bookings", we.Message)

		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("second review for the same booking", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := review.NewCreateReview(repo, new(mocks.NotificationSender), new(mocks.AuditSink))

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).Return(completed, nil).Once()
		repo.On("HasReviewForBooking", ctx, uint(5)).Return(true, nil).Once()

		_, err := uc.Execute(ctx, input)

		assert.True(t, httperr.IsKind(err, httperr.KindConflict))

		var we httperr.WorkflowError
		require.True(t, errors.As(err, &we))
		assert.Equal(t, "You have already reviewed this booking", we.Message)

		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("race lost to a concurrent review", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		uc := review.NewCreateReview(repo, sender, new(mocks.AuditSink))

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).Return(completed, nil).Once()
		repo.On("HasReviewForBooking", ctx, uint(5)).Return(false, nil).Once()
		// the unique index on booking_id fires instead of the pre-check
		repo.On("CreateReview", ctx, mock.Anything).
			Return(httperr.ErrConflict("already_reviewed", "You have already reviewed this booking")).Once()

		_, err := uc.Execute(ctx, input)

		assert.True(t, httperr.IsKind(err, httperr.KindConflict))
		sender.AssertNotCalled(t, "Notify",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not undo the review", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		sender := new(mocks.NotificationSender)
		sink := new(mocks.AuditSink)
		uc := review.NewCreateReview(repo, sender, sink)

		repo.On("GetBookingForCustomer", ctx, uint(5), uint(1)).Return(completed, nil).Once()
		repo.On("HasReviewForBooking", ctx, uint(5)).Return(false, nil).Once()
		repo.On("CreateReview", ctx, mock.Anything).Return(nil).Once()
		sender.On("Notify", ctx, models.RecipientBusiness, uint(10),
			mock.Anything, mock.Anything, models.NotificationNewReview).
			Return(errors.New("notification store down")).Once()
		sink.On("Dispatch", mock.Anything).Once()

		rv, err := uc.Execute(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, 5, rv.Rating)
	})
}
