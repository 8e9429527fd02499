package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:255" json:"location"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// password-reset OTP triple: either fully null or fully populated
	ResetCode      *string    `gorm:"size:10" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`
	ResetVerified  *bool      `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
