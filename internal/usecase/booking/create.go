package booking

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/queuely/queuely-api/internal/audit"
	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/logger"
	"github.com/queuely/queuely-api/internal/models"
	"github.com/queuely/queuely-api/internal/notification"
	"github.com/queuely/queuely-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	BusinessID uint

	ServiceName string
	BarberName  string

	Date   string
	Time   string
	Amount float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier notification.Sender
	audit    audit.Sink
}

func NewCreateBooking(
	repo domain.Repository,
	notifier notification.Sender,
	audit audit.Sink,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !validators.IsValidDate(in.Date) {
		return nil, httperr.ErrInvalidArgument("invalid_date", "Invalid date")
	}
	if !validators.IsValidTime(in.Time) {
		return nil, httperr.ErrInvalidArgument("invalid_time", "Invalid time")
	}
	if in.Amount < 0 {
		return nil, httperr.ErrInvalidArgument("invalid_amount", "Invalid amount")
	}

	// the token is trusted but may reference a deleted account
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrNotFound("customer_not_found", "Customer not found")
	}

	b := &models.Booking{
		BusinessID:    in.BusinessID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ServiceName:   in.ServiceName,
		BarberName:    in.BarberName,
		Date:          in.Date,
		Time:          in.Time,
		Amount:        in.Amount,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// best effort: the booking stands even if the notification write fails
	if err := uc.notifier.Notify(
		ctx,
		models.RecipientCustomer,
		customer.ID,
		"Booking requested",
		fmt.Sprintf("Your booking for %s is pending confirmation.", b.ServiceName),
		models.NotificationBookingPending,
	); err != nil {
		logger.WithFields(logrus.Fields{
			"booking_id":  b.ID,
			"customer_id": customer.ID,
		}).WithError(err).Warn("booking notification failed")
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		ActorKind:  models.RecipientCustomer,
		ActorID:    &customer.ID,
		Action:     audit.ActionBookingCreated,
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
