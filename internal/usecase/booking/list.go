package booking

import (
	"context"

	domain "github.com/queuely/queuely-api/internal/domain/booking"
	"github.com/queuely/queuely-api/internal/models"
)

const recentLimit = 10

type ListBookingsForCustomer struct {
	repo domain.Repository
}

func NewListBookingsForCustomer(repo domain.Repository) *ListBookingsForCustomer {
	return &ListBookingsForCustomer{repo: repo}
}

// Execute returns the customer's bookings newest first, each carrying
// its review when one exists. The joined review is the sole signal the
// client uses for "already reviewed".
func (uc *ListBookingsForCustomer) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForCustomer(ctx, customerID)
}

type ListBookingsForBusiness struct {
	repo domain.Repository
}

func NewListBookingsForBusiness(repo domain.Repository) *ListBookingsForBusiness {
	return &ListBookingsForBusiness{repo: repo}
}

func (uc *ListBookingsForBusiness) Execute(
	ctx context.Context,
	businessID uint,
	recent bool,
) ([]models.Booking, error) {

	limit := 0
	if recent {
		limit = recentLimit
	}

	return uc.repo.ListBookingsForBusiness(ctx, businessID, limit)
}
