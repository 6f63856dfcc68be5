package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
)

// Function-field mocks for the repository interfaces. Unset lookup functions
// behave as "not found"; unset mutations succeed.

type mockEventRepo struct {
	createFn        func(ctx context.Context, event *models.Event) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Event, error)
	findAllFn       func(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	updateFn        func(ctx context.Context, tx *gorm.DB, event *models.Event) error
	countByClientFn func(ctx context.Context, clientID uint) (int64, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, event)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockEventRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	return m.FindByID(ctx, id)
}

func (m *mockEventRepo) FindAll(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockEventRepo) Update(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, tx, event)
}

func (m *mockEventRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.EventStatus) error {
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error { return nil }

func (m *mockEventRepo) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	if m.countByClientFn == nil {
		return 0, nil
	}
	return m.countByClientFn(ctx, clientID)
}

func (m *mockEventRepo) GetDB() *gorm.DB { return nil }

type mockClientRepo struct {
	createFn   func(ctx context.Context, client *models.Client) error
	findByIDFn func(ctx context.Context, id uint) (*models.Client, error)
	findAllFn  func(ctx context.Context) ([]models.Client, error)
	updateFn   func(ctx context.Context, client *models.Client) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, client)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]models.Client, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockClientRepo) Update(ctx context.Context, client *models.Client) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, client)
}

func (m *mockClientRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockEquipmentRepo struct {
	createFn     func(ctx context.Context, equipment *models.Equipment) error
	findByIDFn   func(ctx context.Context, id uint) (*models.Equipment, error)
	findByCodeFn func(ctx context.Context, code string) (*models.Equipment, error)
	findAllFn    func(ctx context.Context, filter repository.EquipmentFilter) ([]models.Equipment, error)
	updateFn     func(ctx context.Context, equipment *models.Equipment) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (m *mockEquipmentRepo) Create(ctx context.Context, equipment *models.Equipment) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, equipment)
}

func (m *mockEquipmentRepo) FindByID(ctx context.Context, id uint) (*models.Equipment, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockEquipmentRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Equipment, error) {
	return m.FindByID(ctx, id)
}

func (m *mockEquipmentRepo) FindByCode(ctx context.Context, code string) (*models.Equipment, error) {
	if m.findByCodeFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByCodeFn(ctx, code)
}

func (m *mockEquipmentRepo) FindAll(ctx context.Context, filter repository.EquipmentFilter) ([]models.Equipment, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, equipment *models.Equipment) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, equipment)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockEquipmentRepo) MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return nil
}

func (m *mockEquipmentRepo) ReleaseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return nil
}

type mockAllocationRepo struct {
	findByIDFn      func(ctx context.Context, id uint) (*models.EventAllocation, error)
	findByEventFn   func(ctx context.Context, eventID uint) ([]models.EventAllocation, error)
	findConflictsFn func(ctx context.Context, equipmentID, excludeEventID uint, date time.Time) ([]repository.ConflictingEvent, error)
	countActiveFn   func(ctx context.Context, equipmentID uint) (int64, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockAllocationRepo) Create(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error {
	return nil
}

func (m *mockAllocationRepo) FindByID(ctx context.Context, id uint) (*models.EventAllocation, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockAllocationRepo) FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventAllocation, error) {
	if m.findByEventFn == nil {
		return nil, nil
	}
	return m.findByEventFn(ctx, eventID)
}

func (m *mockAllocationRepo) FindConflicts(ctx context.Context, tx *gorm.DB, equipmentID, excludeEventID uint, date time.Time) ([]repository.ConflictingEvent, error) {
	if m.findConflictsFn == nil {
		return nil, nil
	}
	return m.findConflictsFn(ctx, equipmentID, excludeEventID, date)
}

func (m *mockAllocationRepo) Update(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error {
	return nil
}

func (m *mockAllocationRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockAllocationRepo) CountActiveByEquipment(ctx context.Context, equipmentID uint) (int64, error) {
	if m.countActiveFn == nil {
		return 0, nil
	}
	return m.countActiveFn(ctx, equipmentID)
}

func (m *mockAllocationRepo) MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return nil
}

func (m *mockAllocationRepo) ReturnActiveByEvent(ctx context.Context, tx *gorm.DB, eventID uint, returnedDate time.Time) error {
	return nil
}

func (m *mockAllocationRepo) GetDB() *gorm.DB { return nil }

type mockTaskRepo struct {
	createFn func(ctx context.Context, task *models.EventTask) error
	findFn   func(ctx context.Context, id uint) (*models.EventTask, error)
	listFn   func(ctx context.Context, eventID uint) ([]models.EventTask, error)
	updateFn func(ctx context.Context, task *models.EventTask) error
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockTaskRepo) Create(ctx context.Context, task *models.EventTask) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, task)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uint) (*models.EventTask, error) {
	if m.findFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findFn(ctx, id)
}

func (m *mockTaskRepo) FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventTask, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, eventID)
}

func (m *mockTaskRepo) CountIncompleteByEvent(ctx context.Context, tx *gorm.DB, eventID uint) (int64, error) {
	return 0, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *models.EventTask) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, task)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockTaskRepo) GetDB() *gorm.DB { return nil }
