package models

import "time"

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index;not null" json:"business_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
