package models

import "time"

type AuditEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint   `gorm:"index" json:"business_id"`
	ActorKind  string `gorm:"size:20" json:"actor_kind"`
	ActorID    *uint  `json:"actor_id"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
