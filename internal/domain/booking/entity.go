package booking

import "github.com/queuely/queuely-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// ApplyDecision overwrites the status unconditionally within the decision
// set. A business may re-accept a booking it already declined.
func ApplyDecision(b *models.Booking, decision Status) {
	b.Status = string(decision)
}
