package models

import "time"

type AllocationStatus string

const (
	AllocationAllocated AllocationStatus = "allocated"
	AllocationInUse     AllocationStatus = "in-use"
	AllocationReturned  AllocationStatus = "returned"
)

// EventAllocation assigns a quantity of one equipment item to one event.
// At most one such record per equipment unit may be active across committed
// events sharing the same date; see service.AllocationService.
type EventAllocation struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	EventID       uint             `gorm:"not null;index" json:"event_id"`
	EquipmentID   uint             `gorm:"not null;index" json:"equipment_id"`
	Quantity      int              `gorm:"not null;default:1" json:"quantity"`
	Status        AllocationStatus `gorm:"type:varchar(20);not null;default:'allocated';index" json:"status"`
	AllocatedDate *time.Time       `gorm:"type:date" json:"allocated_date,omitempty"`
	ReturnedDate  *time.Time       `gorm:"type:date" json:"returned_date,omitempty"`
	Observations  string           `json:"observations,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Event     *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
}

func (s AllocationStatus) Valid() bool {
	switch s {
	case AllocationAllocated, AllocationInUse, AllocationReturned:
		return true
	}
	return false
}

// Active reports whether the allocation still holds the equipment.
func (s AllocationStatus) Active() bool {
	return s == AllocationAllocated || s == AllocationInUse
}
