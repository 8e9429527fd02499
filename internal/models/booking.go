package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `gorm:"index;not null" json:"business_id"`
	CustomerID uint `gorm:"index;not null" json:"customer_id"`

	// snapshot of the customer at creation time, not live-joined
	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	// free text, not foreign keys: catalog edits never rewrite history
	ServiceName string `gorm:"size:100;not null" json:"service_name"`
	BarberName  string `gorm:"size:100" json:"barber_name"`

	Date   string  `gorm:"size:10;not null" json:"date"`
	Time   string  `gorm:"size:5;not null" json:"time"`
	Amount float64 `json:"amount"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Review *Review `gorm:"foreignKey:BookingID" json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
