package booking

import "github.com/queuely/queuely-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusDeclined  Status = "DECLINED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// ParseDecision validates a business status decision. Only ACCEPTED and
// DECLINED are reachable through the API; COMPLETED is reserved for an
// out-of-band process.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusAccepted, StatusDeclined:
		return Status(s), nil
	default:
		return "", httperr.ErrInvalidArgument("invalid_status", "Invalid status")
	}
}

// CanReview defines when a booking accepts a review.
func CanReview(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrInvalidState("booking_not_completed", "You can only review completed bookings")
	}
	return nil
}
