package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/pkg/rabbitmq"
)

// ErrEventClosed rejects allocation management on terminal events.
var ErrEventClosed = errors.New("equipment cannot be managed on a completed or cancelled event")

// AllocationInput is the payload for adding equipment to an event.
type AllocationInput struct {
	EquipmentID  uint
	Quantity     int
	Status       models.AllocationStatus
	Observations string
}

// AllocationUpdate carries a partial allocation edit; nil fields are left
// untouched.
type AllocationUpdate struct {
	Quantity     *int
	Status       *models.AllocationStatus
	Observations *string
}

type AllocationService interface {
	ListForEvent(ctx context.Context, eventID uint) ([]models.EventAllocation, error)
	Add(ctx context.Context, eventID uint, in AllocationInput) (*models.EventAllocation, error)
	Update(ctx context.Context, allocationID uint, update AllocationUpdate) (*models.EventAllocation, error)
	Remove(ctx context.Context, allocationID uint) error
	CheckConflicts(ctx context.Context, equipmentID, excludeEventID uint, date time.Time) ([]repository.ConflictingEvent, error)
}

type allocationService struct {
	allocRepo     repository.AllocationRepository
	eventRepo     repository.EventRepository
	equipmentRepo repository.EquipmentRepository
	publisher     *rabbitmq.Publisher
}

func NewAllocationService(
	allocRepo repository.AllocationRepository,
	eventRepo repository.EventRepository,
	equipmentRepo repository.EquipmentRepository,
	publisher *rabbitmq.Publisher,
) AllocationService {
	return &allocationService{
		allocRepo:     allocRepo,
		eventRepo:     eventRepo,
		equipmentRepo: equipmentRepo,
		publisher:     publisher,
	}
}

func (s *allocationService) ListForEvent(ctx context.Context, eventID uint) ([]models.EventAllocation, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.allocRepo.FindByEventID(ctx, s.allocRepo.GetDB(), eventID)
}

// Add inserts a conflict-checked allocation. The equipment row is locked for
// the duration of the transaction, so two staff members racing to allocate
// the same unit serialize: the second sees the first's committed insert and
// fails the conflict check. Client-side pre-checks are a UX nicety only; this
// is the authoritative guard.
func (s *allocationService) Add(ctx context.Context, eventID uint, in AllocationInput) (*models.EventAllocation, error) {
	if in.Quantity < 1 {
		return nil, NewValidationError("quantity must be at least 1")
	}
	if in.Status == "" {
		in.Status = models.AllocationAllocated
	}
	if !in.Status.Valid() {
		return nil, NewValidationError("unknown allocation status %q", in.Status)
	}

	var result *models.EventAllocation
	err := s.allocRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if event.Status.IsTerminal() {
			return ErrEventClosed
		}

		// Serialization point for this equipment unit.
		equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, in.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return err
		}

		if in.Status.Active() {
			conflicts, err := s.allocRepo.FindConflicts(ctx, tx, in.EquipmentID, eventID, event.EventDate)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return conflictError(equipment.Name, conflicts)
			}
		}

		now := time.Now()
		allocation := &models.EventAllocation{
			EventID:       eventID,
			EquipmentID:   in.EquipmentID,
			Quantity:      in.Quantity,
			Status:        in.Status,
			AllocatedDate: &now,
			Observations:  in.Observations,
		}
		if err := s.allocRepo.Create(ctx, tx, allocation); err != nil {
			return fmt.Errorf("create allocation: %w", err)
		}

		allocation.Equipment = equipment
		result = allocation
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("allocation.created", result)
	}
	return result, nil
}

// Update edits quantity, status or notes. Moving a returned allocation back
// to an active status re-runs the conflict check under the equipment lock:
// the equipment may have been rebooked for that date in the meantime.
// Quantity edits alone never re-check — conflicts are existence-based per
// equipment unit, not quantity-based.
func (s *allocationService) Update(ctx context.Context, allocationID uint, update AllocationUpdate) (*models.EventAllocation, error) {
	if update.Quantity != nil && *update.Quantity < 1 {
		return nil, NewValidationError("quantity must be at least 1")
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, NewValidationError("unknown allocation status %q", *update.Status)
	}

	var result *models.EventAllocation
	err := s.allocRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocation, err := s.allocRepo.FindByID(ctx, allocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAllocationNotFound
			}
			return err
		}

		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, allocation.EventID)
		if err != nil {
			return err
		}
		if event.Status.IsTerminal() {
			return ErrEventClosed
		}

		reactivating := update.Status != nil &&
			allocation.Status == models.AllocationReturned && update.Status.Active()
		if reactivating {
			equipment, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, allocation.EquipmentID)
			if err != nil {
				return err
			}
			conflicts, err := s.allocRepo.FindConflicts(ctx, tx, allocation.EquipmentID, allocation.EventID, event.EventDate)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return conflictError(equipment.Name, conflicts)
			}
		}

		if update.Quantity != nil {
			allocation.Quantity = *update.Quantity
		}
		if update.Status != nil && *update.Status != allocation.Status {
			allocation.Status = *update.Status
			if *update.Status == models.AllocationReturned {
				now := time.Now()
				allocation.ReturnedDate = &now
			} else {
				allocation.ReturnedDate = nil
			}
		}
		if update.Observations != nil {
			allocation.Observations = *update.Observations
		}

		if err := s.allocRepo.Update(ctx, tx, allocation); err != nil {
			return fmt.Errorf("update allocation: %w", err)
		}
		result = allocation
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("allocation.updated", result)
	}
	return result, nil
}

func (s *allocationService) Remove(ctx context.Context, allocationID uint) error {
	allocation, err := s.allocRepo.FindByID(ctx, allocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAllocationNotFound
		}
		return err
	}

	event, err := s.eventRepo.FindByID(ctx, allocation.EventID)
	if err != nil {
		return err
	}
	if event.Status.IsTerminal() {
		return ErrEventClosed
	}

	if err := s.allocRepo.Delete(ctx, allocationID); err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("allocation.removed", map[string]any{
			"id":       allocation.ID,
			"event_id": allocation.EventID,
		})
	}
	return nil
}

// CheckConflicts is the read-only probe behind the availability endpoint. It
// shares the query with the transactional guard but gives no guarantee on its
// own; the insert re-checks under lock.
func (s *allocationService) CheckConflicts(ctx context.Context, equipmentID, excludeEventID uint, date time.Time) ([]repository.ConflictingEvent, error) {
	if _, err := s.equipmentRepo.FindByID(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return s.allocRepo.FindConflicts(ctx, s.allocRepo.GetDB(), equipmentID, excludeEventID, date)
}

func conflictError(equipmentName string, conflicts []repository.ConflictingEvent) *ConflictError {
	titles := make([]string, len(conflicts))
	for i, c := range conflicts {
		titles[i] = c.Title
	}
	return &ConflictError{EquipmentName: equipmentName, Events: titles}
}
