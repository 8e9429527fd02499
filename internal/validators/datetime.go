package validators

import "time"

// Bookings carry date and time as plain strings, snapshotted at creation.
// Only the format is validated; no timezone math is applied.

func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsValidTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
