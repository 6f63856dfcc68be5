package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
)

func TestAddAllocation_ZeroQuantityRejected(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	_, err := svc.Add(context.Background(), 1, AllocationInput{EquipmentID: 2, Quantity: 0})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "quantity")
}

func TestAddAllocation_UnknownStatusRejected(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	_, err := svc.Add(context.Background(), 1, AllocationInput{EquipmentID: 2, Quantity: 1, Status: "lost"})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateAllocation_ZeroQuantityRejected(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	qty := 0
	_, err := svc.Update(context.Background(), 1, AllocationUpdate{Quantity: &qty})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListForEvent_EventNotFound(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	_, err := svc.ListForEvent(context.Background(), 404)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRemoveAllocation_NotFound(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	err := svc.Remove(context.Background(), 999)

	assert.ErrorIs(t, err, ErrAllocationNotFound)
}

func TestRemoveAllocation_ClosedEventRejected(t *testing.T) {
	allocRepo := &mockAllocationRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.EventAllocation, error) {
			return &models.EventAllocation{ID: id, EventID: 7, EquipmentID: 2}, nil
		},
	}
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Status: models.StatusCompleted}, nil
		},
	}
	svc := NewAllocationService(allocRepo, eventRepo, &mockEquipmentRepo{}, nil)

	err := svc.Remove(context.Background(), 3)

	assert.ErrorIs(t, err, ErrEventClosed)
}

func TestRemoveAllocation_Success(t *testing.T) {
	deleted := uint(0)
	allocRepo := &mockAllocationRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.EventAllocation, error) {
			return &models.EventAllocation{ID: id, EventID: 7}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Status: models.StatusPreparation}, nil
		},
	}
	svc := NewAllocationService(allocRepo, eventRepo, &mockEquipmentRepo{}, nil)

	err := svc.Remove(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), deleted)
}

func TestCheckConflicts_EquipmentNotFound(t *testing.T) {
	svc := NewAllocationService(&mockAllocationRepo{}, &mockEventRepo{}, &mockEquipmentRepo{}, nil)

	_, err := svc.CheckConflicts(context.Background(), 999, 0, time.Now())

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestCheckConflicts_PassesThrough(t *testing.T) {
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	equipRepo := &mockEquipmentRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Equipment, error) {
			return &models.Equipment{ID: id, Name: "Chopeira Elétrica"}, nil
		},
	}
	allocRepo := &mockAllocationRepo{
		findConflictsFn: func(ctx context.Context, equipmentID, excludeEventID uint, d time.Time) ([]repository.ConflictingEvent, error) {
			assert.Equal(t, uint(2), equipmentID)
			assert.Equal(t, uint(7), excludeEventID)
			assert.Equal(t, date, d)
			return []repository.ConflictingEvent{{EventID: 11, Title: "Casamento Silva"}}, nil
		},
	}
	svc := NewAllocationService(allocRepo, &mockEventRepo{}, equipRepo, nil)

	conflicts, err := svc.CheckConflicts(context.Background(), 2, 7, date)

	assert.NoError(t, err)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, "Casamento Silva", conflicts[0].Title)
}

func TestConflictError_MessageListsEvents(t *testing.T) {
	err := conflictError("Chopeira Elétrica", []repository.ConflictingEvent{
		{EventID: 11, Title: "Casamento Silva"},
		{EventID: 12, Title: "Formatura Medicina"},
	})

	assert.Contains(t, err.Error(), "Chopeira Elétrica")
	assert.Contains(t, err.Error(), "Casamento Silva")
	assert.Contains(t, err.Error(), "Formatura Medicina")
	assert.Equal(t, []string{"Casamento Silva", "Formatura Medicina"}, err.Events)
}
