package dto

import (
	"time"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

const dateLayout = "2006-01-02"

type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type EquipmentSummary struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type AllocationResponse struct {
	ID            uint                    `json:"id"`
	EventID       uint                    `json:"event_id"`
	EquipmentID   uint                    `json:"equipment_id"`
	Quantity      int                     `json:"quantity"`
	Status        models.AllocationStatus `json:"status"`
	AllocatedDate string                  `json:"allocated_date,omitempty"`
	ReturnedDate  string                  `json:"returned_date,omitempty"`
	Observations  string                  `json:"observations,omitempty"`
	Equipment     *EquipmentSummary       `json:"equipment,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

type EventResponse struct {
	ID                  uint                 `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description,omitempty"`
	ClientID            *uint                `json:"client_id,omitempty"`
	Client              *ClientSummary       `json:"client,omitempty"`
	EventDate           string               `json:"event_date"`
	EventTime           string               `json:"event_time,omitempty"`
	Status              models.EventStatus   `json:"status"`
	Priority            models.EventPriority `json:"priority"`
	AddressStreet       string               `json:"address_street,omitempty"`
	AddressNumber       string               `json:"address_number,omitempty"`
	AddressComplement   string               `json:"address_complement,omitempty"`
	AddressNeighborhood string               `json:"address_neighborhood,omitempty"`
	AddressCity         string               `json:"address_city,omitempty"`
	AddressState        string               `json:"address_state,omitempty"`
	AddressCEP          string               `json:"address_cep,omitempty"`
	BarrelQuantity      int                  `json:"barrel_quantity"`
	EstimatedBudget     *float64             `json:"estimated_budget,omitempty"`
	FinalBudget         *float64             `json:"final_budget,omitempty"`
	AssignedStaff       string               `json:"assigned_staff,omitempty"`
	Observations        string               `json:"observations,omitempty"`
	Allocations         []AllocationResponse `json:"allocations,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type EquipmentResponse struct {
	ID              uint                   `json:"id"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Category        string                 `json:"category,omitempty"`
	Status          models.EquipmentStatus `json:"status"`
	AcquisitionDate string                 `json:"acquisition_date,omitempty"`
	Value           *float64               `json:"value,omitempty"`
	Observations    string                 `json:"observations,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	EventID     uint       `json:"event_id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ClientResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	CpfCnpj             string    `json:"cpf_cnpj,omitempty"`
	CompanyName         string    `json:"company_name,omitempty"`
	ContactPerson       string    `json:"contact_person,omitempty"`
	AddressStreet       string    `json:"address_street,omitempty"`
	AddressNumber       string    `json:"address_number,omitempty"`
	AddressComplement   string    `json:"address_complement,omitempty"`
	AddressNeighborhood string    `json:"address_neighborhood,omitempty"`
	AddressCity         string    `json:"address_city,omitempty"`
	AddressState        string    `json:"address_state,omitempty"`
	AddressCEP          string    `json:"address_cep,omitempty"`
	Observations        string    `json:"observations,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func ToEventResponse(e *models.Event) EventResponse {
	resp := EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		ClientID:            e.ClientID,
		EventDate:           e.EventDate.Format(dateLayout),
		EventTime:           e.EventTime,
		Status:              e.Status,
		Priority:            e.Priority,
		AddressStreet:       e.AddressStreet,
		AddressNumber:       e.AddressNumber,
		AddressComplement:   e.AddressComplement,
		AddressNeighborhood: e.AddressNeighborhood,
		AddressCity:         e.AddressCity,
		AddressState:        e.AddressState,
		AddressCEP:          e.AddressCEP,
		BarrelQuantity:      e.BarrelQuantity,
		EstimatedBudget:     e.EstimatedBudget,
		FinalBudget:         e.FinalBudget,
		AssignedStaff:       e.AssignedStaff,
		Observations:        e.Observations,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if e.Client != nil {
		resp.Client = &ClientSummary{
			ID:    e.Client.ID,
			Name:  e.Client.Name,
			Email: e.Client.Email,
			Phone: e.Client.Phone,
		}
	}
	for i := range e.Allocations {
		resp.Allocations = append(resp.Allocations, ToAllocationResponse(&e.Allocations[i]))
	}
	return resp
}

func ToAllocationResponse(a *models.EventAllocation) AllocationResponse {
	resp := AllocationResponse{
		ID:           a.ID,
		EventID:      a.EventID,
		EquipmentID:  a.EquipmentID,
		Quantity:     a.Quantity,
		Status:       a.Status,
		Observations: a.Observations,
		CreatedAt:    a.CreatedAt,
	}
	if a.AllocatedDate != nil {
		resp.AllocatedDate = a.AllocatedDate.Format(dateLayout)
	}
	if a.ReturnedDate != nil {
		resp.ReturnedDate = a.ReturnedDate.Format(dateLayout)
	}
	if a.Equipment != nil {
		resp.Equipment = &EquipmentSummary{
			ID:       a.Equipment.ID,
			Code:     a.Equipment.Code,
			Name:     a.Equipment.Name,
			Category: a.Equipment.Category,
		}
	}
	return resp
}

func ToEquipmentResponse(e *models.Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:           e.ID,
		Code:         e.Code,
		Name:         e.Name,
		Description:  e.Description,
		Category:     e.Category,
		Status:       e.Status,
		Value:        e.Value,
		Observations: e.Observations,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.AcquisitionDate != nil {
		resp.AcquisitionDate = e.AcquisitionDate.Format(dateLayout)
	}
	return resp
}

func ToTaskResponse(t *models.EventTask) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		Description: t.Description,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CompletedBy: t.CompletedBy,
		OrderIndex:  t.OrderIndex,
		CreatedAt:   t.CreatedAt,
	}
}

func ToClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		CpfCnpj:             c.CpfCnpj,
		CompanyName:         c.CompanyName,
		ContactPerson:       c.ContactPerson,
		AddressStreet:       c.AddressStreet,
		AddressNumber:       c.AddressNumber,
		AddressComplement:   c.AddressComplement,
		AddressNeighborhood: c.AddressNeighborhood,
		AddressCity:         c.AddressCity,
		AddressState:        c.AddressState,
		AddressCEP:          c.AddressCEP,
		Observations:        c.Observations,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
