package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// uniqueIndex enforces one review per booking at the store level
	BookingID  uint `gorm:"uniqueIndex;not null" json:"booking_id"`
	BusinessID uint `gorm:"index;not null" json:"business_id"`
	CustomerID uint `gorm:"index;not null" json:"customer_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
