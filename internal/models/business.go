package models

import "time"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName       string `gorm:"size:100;not null" json:"shop_name"`
	OwnerFirstName string `gorm:"size:100;not null" json:"owner_first_name"`
	OwnerLastName  string `gorm:"size:100;not null" json:"owner_last_name"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Country       string `gorm:"size:100;not null" json:"country"`
	LocalLocation string `gorm:"size:255" json:"local_location,omitempty"`

	ProfileImage string `gorm:"size:255" json:"profile_image,omitempty"`

	// comma-joined list of focus tags, e.g. "fades,beard,kids"
	FocusTags string `gorm:"size:255" json:"focus_tags,omitempty"`

	ResetCode      *string    `gorm:"size:10" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`
	ResetVerified  *bool      `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
