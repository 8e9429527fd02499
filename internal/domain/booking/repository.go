package booking

import (
	"context"

	"github.com/queuely/queuely-api/internal/models"
)

type Repository interface {
	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Booking (create / list) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForBusiness(
		ctx context.Context,
		businessID uint,
		limit int,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	GetBookingForBusiness(
		ctx context.Context,
		bookingID uint,
		businessID uint,
	) (*models.Booking, error)

	GetBookingForCustomer(
		ctx context.Context,
		bookingID uint,
		customerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Review --------
	HasReviewForBooking(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	ListReviewsForBusiness(
		ctx context.Context,
		businessID uint,
	) ([]models.Review, error)
}
