package review

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
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	CustomerID uint
	BookingID  uint
	Rating     int
	Comment    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo     domain.Repository
	notifier notification.Sender
	audit    audit.Sink
}

func NewCreateReview(
	repo domain.Repository,
	notifier notification.Sender,
	audit audit.Sink,
) *CreateReview {
	return &CreateReview{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the precondition checks in order; the first failure
// decides the response.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrInvalidArgument("invalid_rating", "Rating must be between 1 and 5")
	}

	// 1. booking exists and belongs to the customer
	b, err := uc.repo.GetBookingForCustomer(ctx, in.BookingID, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	// 2. booking is completed
	if err := domain.CanReview(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	// 3. no review references the booking yet
	exists, err := uc.repo.HasReviewForBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict("already_reviewed", "You have already reviewed this booking")
	}

	rv := &models.Review{
		BookingID:  b.ID,
		BusinessID: b.BusinessID,
		CustomerID: in.CustomerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	// the unique index on booking_id backstops concurrent attempts; the
	// repository maps that violation onto the same conflict
	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	if err := uc.notifier.Notify(
		ctx,
		models.RecipientBusiness,
		b.BusinessID,
		"New review",
		fmt.Sprintf("%s left a %d-star review.", b.CustomerName, rv.Rating),
		models.NotificationNewReview,
	); err != nil {
		logger.WithFields(logrus.Fields{
			"review_id":   rv.ID,
			"business_id": b.BusinessID,
		}).WithError(err).Warn("review notification failed")
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: b.BusinessID,
		ActorKind:  models.RecipientCustomer,
		ActorID:    &in.CustomerID,
		Action:     audit.ActionReviewCreated,
		Entity:     "review",
		EntityID:   &rv.ID,
		Metadata:   map[string]any{"rating": rv.Rating},
	})

	return rv, nil
}
