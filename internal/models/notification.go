package models

import "time"

const (
	RecipientCustomer = "customer"
	RecipientBusiness = "business"
)

const (
	NotificationBookingPending   = "BOOKING_PENDING"
	NotificationBookingAccepted  = "BOOKING_ACCEPTED"
	NotificationBookingDeclined  = "BOOKING_DECLINED"
	NotificationBookingCompleted = "BOOKING_COMPLETED"
	NotificationNewReview        = "NEW_REVIEW"
	NotificationGeneral          = "GENERAL"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// customer and business ids come from independent sequences, so the
	// recipient is addressed by kind+id, never by a bare id
	RecipientKind string `gorm:"size:20;index:idx_notifications_recipient;not null" json:"recipient_kind"`
	RecipientID   uint   `gorm:"index:idx_notifications_recipient;not null" json:"recipient_id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`
	Type    string `gorm:"size:30;not null" json:"type"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
