package models

import "time"

const (
	BarberStatusActive   = "ACTIVE"
	BarberStatusInactive = "INACTIVE"
)

type Barber struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index;not null" json:"business_id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Email           string `gorm:"size:100" json:"email,omitempty"`
	Phone           string `gorm:"size:20" json:"phone,omitempty"`
	Specialization  string `gorm:"size:100" json:"specialization,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`

	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
