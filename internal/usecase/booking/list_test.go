package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuely/queuely-api/internal/mocks"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/usecase/booking"
)

func TestListBookingsForCustomer(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.BookingRepository)
	uc := booking.NewListBookingsForCustomer(repo)

	reviewed := models.Booking{
		ID:     1,
		Status: "COMPLETED",
		Review: &models.Review{ID: 4, BookingID: 1, Rating: 5},
	}
	unreviewed := models.Booking{ID: 2, Status: "PENDING"}

	repo.On("ListBookingsForCustomer", ctx, uint(9)).
		Return([]models.Booking{reviewed, unreviewed}, nil).Once()

	bookings, err := uc.Execute(ctx, 9)

	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// the joined review is the "already reviewed" signal
	assert.NotNil(t, bookings[0].Review)
	assert.Nil(t, bookings[1].Review)
}

func TestListBookingsForBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("full listing", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewListBookingsForBusiness(repo)

		repo.On("ListBookingsForBusiness", ctx, uint(10), 0).
			Return([]models.Booking{}, nil).Once()

		_, err := uc.Execute(ctx, 10, false)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("recent caps at ten", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		uc := booking.NewListBookingsForBusiness(repo)

		repo.On("ListBookingsForBusiness", ctx, uint(10), 10).
			Return([]models.Booking{}, nil).Once()

		_, err := uc.Execute(ctx, 10, true)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
