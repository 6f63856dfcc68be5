package models

import "time"

// EventTask is an ad hoc checklist item staff attach to an event during
// planning. All tasks must be completed before the event advances from
// preparation to assembly.
type EventTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EventID     uint       `gorm:"not null;index" json:"event_id"`
	Description string     `gorm:"not null" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	OrderIndex  int        `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
