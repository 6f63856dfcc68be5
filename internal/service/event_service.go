package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/internal/requirements"
	"github.com/fhelderls/eventflow-kanban/pkg/rabbitmq"
)

// lifecycleTransitions is the canonical state machine. Completed and
// cancelled are terminal.
var lifecycleTransitions = map[models.EventStatus][]models.EventStatus{
	models.StatusPlanning:    {models.StatusPreparation, models.StatusCancelled},
	models.StatusPreparation: {models.StatusAssembly, models.StatusCancelled},
	models.StatusAssembly:    {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress:  {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:   {},
	models.StatusCancelled:   {},
}

func canTransition(from, to models.EventStatus) bool {
	for _, next := range lifecycleTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EventUpdate carries a partial event edit; nil fields are left untouched.
type EventUpdate struct {
	Title               *string
	Description         *string
	ClientID            *uint
	EventDate           *time.Time
	EventTime           *string
	Priority            *models.EventPriority
	AddressStreet       *string
	AddressNumber       *string
	AddressComplement   *string
	AddressNeighborhood *string
	AddressCity         *string
	AddressState        *string
	AddressCEP          *string
	BarrelQuantity      *int
	EstimatedBudget     *float64
	FinalBudget         *float64
	AssignedStaff       *string
	Observations        *string
}

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uint, update EventUpdate) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	Transition(ctx context.Context, id uint, target models.EventStatus) (*models.Event, error)
	ValidateRequirements(ctx context.Context, eventID uint) (*requirements.Report, error)
}

type eventService struct {
	eventRepo     repository.EventRepository
	clientRepo    repository.ClientRepository
	allocRepo     repository.AllocationRepository
	equipmentRepo repository.EquipmentRepository
	taskRepo      repository.TaskRepository
	publisher     *rabbitmq.Publisher
}

func NewEventService(
	eventRepo repository.EventRepository,
	clientRepo repository.ClientRepository,
	allocRepo repository.AllocationRepository,
	equipmentRepo repository.EquipmentRepository,
	taskRepo repository.TaskRepository,
	publisher *rabbitmq.Publisher,
) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		clientRepo:    clientRepo,
		allocRepo:     allocRepo,
		equipmentRepo: equipmentRepo,
		taskRepo:      taskRepo,
		publisher:     publisher,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.Title == "" {
		return NewValidationError("title is required")
	}
	if event.EventDate.IsZero() {
		return NewValidationError("event_date is required")
	}
	if event.Status == "" {
		event.Status = models.StatusPlanning
	}
	if !event.Status.Valid() {
		return NewValidationError("unknown event status %q", event.Status)
	}
	if event.Priority == "" {
		event.Priority = models.PriorityMedium
	}
	if !event.Priority.Valid() {
		return NewValidationError("unknown event priority %q", event.Priority)
	}
	if event.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *event.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("lookup client: %w", err)
		}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx, filter)
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, update EventUpdate) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if *update.Title == "" {
			return nil, NewValidationError("title cannot be empty")
		}
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.ClientID != nil {
		if *update.ClientID == 0 {
			event.ClientID = nil
		} else {
			if _, err := s.clientRepo.FindByID(ctx, *update.ClientID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrClientNotFound
				}
				return nil, fmt.Errorf("lookup client: %w", err)
			}
			event.ClientID = update.ClientID
		}
	}
	dateChanged := false
	if update.EventDate != nil {
		if update.EventDate.IsZero() {
			return nil, NewValidationError("event_date cannot be empty")
		}
		dateChanged = !update.EventDate.Equal(event.EventDate)
		event.EventDate = *update.EventDate
	}
	if update.EventTime != nil {
		event.EventTime = *update.EventTime
	}
	if update.Priority != nil {
		if !update.Priority.Valid() {
			return nil, NewValidationError("unknown event priority %q", *update.Priority)
		}
		event.Priority = *update.Priority
	}
	if update.AddressStreet != nil {
		event.AddressStreet = *update.AddressStreet
	}
	if update.AddressNumber != nil {
		event.AddressNumber = *update.AddressNumber
	}
	if update.AddressComplement != nil {
		event.AddressComplement = *update.AddressComplement
	}
	if update.AddressNeighborhood != nil {
		event.AddressNeighborhood = *update.AddressNeighborhood
	}
	if update.AddressCity != nil {
		event.AddressCity = *update.AddressCity
	}
	if update.AddressState != nil {
		event.AddressState = *update.AddressState
	}
	if update.AddressCEP != nil {
		event.AddressCEP = *update.AddressCEP
	}
	if update.BarrelQuantity != nil {
		if *update.BarrelQuantity < 0 {
			return nil, NewValidationError("barrel_quantity cannot be negative")
		}
		event.BarrelQuantity = *update.BarrelQuantity
	}
	if update.EstimatedBudget != nil {
		event.EstimatedBudget = update.EstimatedBudget
	}
	if update.FinalBudget != nil {
		event.FinalBudget = update.FinalBudget
	}
	if update.AssignedStaff != nil {
		event.AssignedStaff = *update.AssignedStaff
	}
	if update.Observations != nil {
		event.Observations = *update.Observations
	}

	if dateChanged {
		if err := s.updateWithDateRecheck(ctx, event); err != nil {
			return nil, err
		}
	} else if err := s.eventRepo.Update(ctx, s.eventRepo.GetDB(), event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.updated", event)
	}
	return event, nil
}

// updateWithDateRecheck saves a date edit. Moving the date can double-book
// equipment the event already holds, so every active allocation is re-checked
// against the new date under the same equipment locks the allocation insert
// uses; the save commits only if the whole ledger is still conflict-free.
func (s *eventService) updateWithDateRecheck(ctx context.Context, event *models.Event) error {
	return s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocations, err := s.allocRepo.FindByEventID(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		for _, allocation := range allocations {
			if !allocation.Status.Active() {
				continue
			}
			equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, allocation.EquipmentID)
			if err != nil {
				return err
			}
			conflicts, err := s.allocRepo.FindConflicts(ctx, tx, allocation.EquipmentID, event.ID, event.EventDate)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return conflictError(equipment.Name, conflicts)
			}
		}
		return s.eventRepo.Update(ctx, tx, event)
	})
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	// The event exclusively owns its allocations and tasks; the FK cascade
	// removes them in the same statement's transaction.
	err = s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.eventRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.deleted", map[string]any{"id": event.ID, "title": event.Title})
	}
	return nil
}

// Transition moves the event to the target lifecycle state. The event row is
// locked for the duration so concurrent staff actions serialize; guard checks
// and side effects commit atomically or not at all.
func (s *eventService) Transition(ctx context.Context, id uint, target models.EventStatus) (*models.Event, error) {
	if !target.Valid() {
		return nil, NewValidationError("unknown event status %q", target)
	}

	var from models.EventStatus
	err := s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		from = event.Status

		if !canTransition(event.Status, target) {
			return &InvalidTransitionError{From: event.Status, To: target}
		}

		switch {
		case event.Status == models.StatusPlanning && target == models.StatusPreparation:
			if err := checkPlanningComplete(event); err != nil {
				return err
			}

		case event.Status == models.StatusPreparation && target == models.StatusAssembly:
			if err := s.checkPreparationComplete(ctx, tx, id); err != nil {
				return err
			}
			// Equipment first: the allocation flip below consumes the
			// pending (allocated) rows the subquery keys on.
			if err := s.equipmentRepo.MarkInUseByEvent(ctx, tx, id); err != nil {
				return err
			}
			if err := s.allocRepo.MarkInUseByEvent(ctx, tx, id); err != nil {
				return err
			}

		case target == models.StatusCancelled:
			if err := s.equipmentRepo.ReleaseByEvent(ctx, tx, id); err != nil {
				return err
			}
			if err := s.allocRepo.ReturnActiveByEvent(ctx, tx, id, time.Now()); err != nil {
				return err
			}
		}

		return s.eventRepo.UpdateStatus(ctx, tx, id, target)
	})
	if err != nil {
		return nil, err
	}

	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.transitioned", map[string]any{
			"id":    event.ID,
			"title": event.Title,
			"from":  from,
			"to":    target,
		})
	}
	return event, nil
}

// checkPlanningComplete gates planning→preparation: the core booking fields
// must be filled in before the event is considered real.
func checkPlanningComplete(event *models.Event) error {
	var missing []string
	if event.Title == "" {
		missing = append(missing, "title")
	}
	if event.ClientID == nil {
		missing = append(missing, "client")
	}
	if event.EventDate.IsZero() {
		missing = append(missing, "event_date")
	}
	if event.EstimatedBudget == nil {
		missing = append(missing, "estimated_budget")
	}
	if len(missing) > 0 {
		return &PreconditionsError{MissingFields: missing}
	}
	return nil
}

// checkPreparationComplete gates preparation→assembly: every required
// equipment category satisfied and every checklist task done.
func (s *eventService) checkPreparationComplete(ctx context.Context, tx *gorm.DB, eventID uint) error {
	allocations, err := s.allocRepo.FindByEventID(ctx, tx, eventID)
	if err != nil {
		return err
	}
	report := requirements.Evaluate(requirements.Required, allocations)

	incomplete, err := s.taskRepo.CountIncompleteByEvent(ctx, tx, eventID)
	if err != nil {
		return err
	}

	if !report.AllSatisfied || incomplete > 0 {
		return &PreconditionsError{
			MissingCategories: report.Missing,
			IncompleteTasks:   incomplete,
		}
	}
	return nil
}

// ValidateRequirements recomputes the requirement report from the current
// allocation ledger; nothing is cached.
func (s *eventService) ValidateRequirements(ctx context.Context, eventID uint) (*requirements.Report, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	allocations, err := s.allocRepo.FindByEventID(ctx, s.allocRepo.GetDB(), eventID)
	if err != nil {
		return nil, err
	}
	report := requirements.Evaluate(requirements.Required, allocations)
	return &report, nil
}
