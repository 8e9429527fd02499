package booking

import (
	"context"

	"github.com/queuely/queuely-api/internal/audit"
	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/httperr"
	"github.com/queuely/queuely-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the booking status within the {ACCEPTED, DECLINED}
// decision set. The customer is not notified here.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	businessID uint,
	bookingID uint,
	newStatus string,
) (*models.Booking, error) {

	decision, err := domain.ParseDecision(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForBusiness(ctx, bookingID, businessID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	domain.ApplyDecision(b, decision)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		ActorKind:  models.RecipientBusiness,
		ActorID:    &businessID,
		Action:     audit.ActionBookingStatusChanged,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata:   map[string]any{"status": b.Status},
	})

	return b, nil
}
