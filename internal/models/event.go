package models

import "time"

type EventStatus string

// Canonical lifecycle. The legacy 5-state model (planejado/confirmado/...) is
// deprecated; this set is the source of truth.
const (
	StatusPlanning    EventStatus = "planning"
	StatusPreparation EventStatus = "preparation"
	StatusAssembly    EventStatus = "assembly"
	StatusInProgress  EventStatus = "in-progress"
	StatusCompleted   EventStatus = "completed"
	StatusCancelled   EventStatus = "cancelled"
)

type EventPriority string

const (
	PriorityLow    EventPriority = "low"
	PriorityMedium EventPriority = "medium"
	PriorityHigh   EventPriority = "high"
)

type Event struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description,omitempty"`
	ClientID    *uint         `gorm:"index" json:"client_id,omitempty"`
	EventDate   time.Time     `gorm:"type:date;not null;index" json:"event_date"`
	EventTime   string        `json:"event_time,omitempty"`
	Status      EventStatus   `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	Priority    EventPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`

	AddressStreet       string `json:"address_street,omitempty"`
	AddressNumber       string `json:"address_number,omitempty"`
	AddressComplement   string `json:"address_complement,omitempty"`
	AddressNeighborhood string `json:"address_neighborhood,omitempty"`
	AddressCity         string `json:"address_city,omitempty"`
	AddressState        string `json:"address_state,omitempty"`
	AddressCEP          string `json:"address_cep,omitempty"`

	BarrelQuantity  int      `gorm:"not null;default:0" json:"barrel_quantity"`
	EstimatedBudget *float64 `json:"estimated_budget,omitempty"`
	FinalBudget     *float64 `json:"final_budget,omitempty"`
	AssignedStaff   string   `json:"assigned_staff,omitempty"`
	Observations    string   `json:"observations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client      *Client           `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Allocations []EventAllocation `gorm:"foreignKey:EventID" json:"allocations,omitempty"`
	Tasks       []EventTask       `gorm:"foreignKey:EventID" json:"tasks,omitempty"`
}

// IsTerminal reports whether no outbound transition exists from s.
func (s EventStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Valid reports whether s is one of the canonical lifecycle states.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusPreparation, StatusAssembly, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (p EventPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// CommittedStatuses are the lifecycle states in which an event's allocations are
// binding for conflict detection. Completed events keep blocking their date: the
// equipment was physically out that day.
var CommittedStatuses = []EventStatus{
	StatusPreparation,
	StatusAssembly,
	StatusInProgress,
	StatusCompleted,
}
