// Package mocks holds testify mocks shared by the use case and handler
// tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/queuely/queuely-api/internal/audit"
	"github.com/queuely/queuely-api/internal/models"
)

// ---------------------------------------------------
// BookingRepository
// ---------------------------------------------------

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookingRepository) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	args := m.Called(ctx, customerID)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) ListBookingsForBusiness(ctx context.Context, businessID uint, limit int) ([]models.Booking, error) {
	args := m.Called(ctx, businessID, limit)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) GetBookingForBusiness(ctx context.Context, bookingID, businessID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, businessID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) GetBookingForCustomer(ctx context.Context, bookingID, customerID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, customerID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookingRepository) HasReviewForBooking(ctx context.Context, bookingID uint) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *BookingRepository) ListReviewsForBusiness(ctx context.Context, businessID uint) ([]models.Review, error) {
	args := m.Called(ctx, businessID)
	if rvs, ok := args.Get(0).([]models.Review); ok {
		return rvs, args.Error(1)
	}
	return nil, args.Error(1)
}

// ---------------------------------------------------
// NotificationSender / NotificationStore
// ---------------------------------------------------

type NotificationSender struct {
	mock.Mock
}

func (m *NotificationSender) Notify(ctx context.Context, recipientKind string, recipientID uint, title, message, ntype string) error {
	args := m.Called(ctx, recipientKind, recipientID, title, message, ntype)
	return args.Error(0)
}

type NotificationStore struct {
	mock.Mock
}

func (m *NotificationStore) ListForRecipient(ctx context.Context, recipientKind string, recipientID uint) ([]models.Notification, error) {
	args := m.Called(ctx, recipientKind, recipientID)
	if ns, ok := args.Get(0).([]models.Notification); ok {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationStore) MarkRead(ctx context.Context, recipientKind string, recipientID, notificationID uint) (bool, error) {
	args := m.Called(ctx, recipientKind, recipientID, notificationID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationStore) MarkAllRead(ctx context.Context, recipientKind string, recipientID uint) error {
	args := m.Called(ctx, recipientKind, recipientID)
	return args.Error(0)
}

// ---------------------------------------------------
// AuditSink
// ---------------------------------------------------

type AuditSink struct {
	mock.Mock
}

func (m *AuditSink) Dispatch(ev audit.Event) {
	m.Called(ev)
}
