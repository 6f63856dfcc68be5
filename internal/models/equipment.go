package models

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in-use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentUnavailable EquipmentStatus = "unavailable"
)

type Equipment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Code            string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `gorm:"size:50;index" json:"category,omitempty"`
	Status          EquipmentStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	AcquisitionDate *time.Time      `gorm:"type:date" json:"acquisition_date,omitempty"`
	Value           *float64        `json:"value,omitempty"`
	Observations    string          `json:"observations,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentUnavailable:
		return true
	}
	return false
}
