package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Review").
		Where("customer_id = ?", customerID).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForBusiness(
	ctx context.Context,
	businessID uint,
	limit int,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForBusiness(
	ctx context.Context,
	bookingID uint,
	businessID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", bookingID, businessID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForCustomer(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", bookingID, customerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *BookingGormRepository) HasReviewForBooking(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateReview relies on the unique index on booking_id to close the
// race left open by the read-then-write check. The constraint violation
// maps to the same conflict the pre-check produces.
func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrConflict("already_reviewed", "You have already reviewed this booking")
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) ListReviewsForBusiness(
	ctx context.Context,
	businessID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
