package dto

// Date-valued fields travel as "2006-01-02" strings, matching the date
// columns they land in.

type CreateEventRequest struct {
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description"`
	ClientID            *uint    `json:"client_id" validate:"omitempty,gt=0"`
	EventDate           string   `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime           string   `json:"event_time"`
	Status              string   `json:"status" validate:"omitempty,oneof=planning preparation assembly in-progress completed cancelled"`
	Priority            string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	AddressStreet       string   `json:"address_street"`
	AddressNumber       string   `json:"address_number"`
	AddressComplement   string   `json:"address_complement"`
	AddressNeighborhood string   `json:"address_neighborhood"`
	AddressCity         string   `json:"address_city"`
	AddressState        string   `json:"address_state"`
	AddressCEP          string   `json:"address_cep"`
	BarrelQuantity      int      `json:"barrel_quantity" validate:"gte=0"`
	EstimatedBudget     *float64 `json:"estimated_budget" validate:"omitempty,gte=0"`
	FinalBudget         *float64 `json:"final_budget" validate:"omitempty,gte=0"`
	AssignedStaff       string   `json:"assigned_staff"`
	Observations        string   `json:"observations"`
}

type UpdateEventRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	ClientID            *uint    `json:"client_id"`
	EventDate           *string  `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime           *string  `json:"event_time"`
	Priority            *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	AddressStreet       *string  `json:"address_street"`
	AddressNumber       *string  `json:"address_number"`
	AddressComplement   *string  `json:"address_complement"`
	AddressNeighborhood *string  `json:"address_neighborhood"`
	AddressCity         *string  `json:"address_city"`
	AddressState        *string  `json:"address_state"`
	AddressCEP          *string  `json:"address_cep"`
	BarrelQuantity      *int     `json:"barrel_quantity" validate:"omitempty,gte=0"`
	EstimatedBudget     *float64 `json:"estimated_budget" validate:"omitempty,gte=0"`
	FinalBudget         *float64 `json:"final_budget" validate:"omitempty,gte=0"`
	AssignedStaff       *string  `json:"assigned_staff"`
	Observations        *string  `json:"observations"`
}

// TransitionEventRequest moves an event to the target lifecycle state. Status
// edits never ride along on a normal update; they go through this endpoint so
// the guards always run.
type TransitionEventRequest struct {
	Status string `json:"status" validate:"required,oneof=planning preparation assembly in-progress completed cancelled"`
}

type CreateEquipmentRequest struct {
	Code            string   `json:"code" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Status          string   `json:"status" validate:"omitempty,oneof=available in-use maintenance unavailable"`
	AcquisitionDate *string  `json:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`
	Value           *float64 `json:"value" validate:"omitempty,gte=0"`
	Observations    string   `json:"observations"`
}

type UpdateEquipmentRequest struct {
	Code            *string  `json:"code"`
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Status          *string  `json:"status" validate:"omitempty,oneof=available in-use maintenance unavailable"`
	AcquisitionDate *string  `json:"acquisition_date" validate:"omitempty,datetime=2006-01-02"`
	Value           *float64 `json:"value" validate:"omitempty,gte=0"`
	Observations    *string  `json:"observations"`
}

type AddAllocationRequest struct {
	EquipmentID  uint   `json:"equipment_id" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" validate:"required,gte=1"`
	Status       string `json:"status" validate:"omitempty,oneof=allocated in-use returned"`
	Observations string `json:"observations"`
}

type UpdateAllocationRequest struct {
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=1"`
	Status       *string `json:"status" validate:"omitempty,oneof=allocated in-use returned"`
	Observations *string `json:"observations"`
}

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

type ToggleTaskRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type ClientRequest struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	Phone               string `json:"phone"`
	CpfCnpj             string `json:"cpf_cnpj"`
	CompanyName         string `json:"company_name"`
	ContactPerson       string `json:"contact_person"`
	AddressStreet       string `json:"address_street"`
	AddressNumber       string `json:"address_number"`
	AddressComplement   string `json:"address_complement"`
	AddressNeighborhood string `json:"address_neighborhood"`
	AddressCity         string `json:"address_city"`
	AddressState        string `json:"address_state"`
	AddressCEP          string `json:"address_cep"`
	Observations        string `json:"observations"`
}
