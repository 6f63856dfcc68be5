package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

// ConflictingEvent identifies another event holding the same equipment unit
// on the same date.
type ConflictingEvent struct {
	EventID uint   `json:"event_id"`
	Title   string `json:"title"`
}

type AllocationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error
	FindByID(ctx context.Context, id uint) (*models.EventAllocation, error)
	FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventAllocation, error)
	FindConflicts(ctx context.Context, tx *gorm.DB, equipmentID, excludeEventID uint, date time.Time) ([]ConflictingEvent, error)
	Update(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error
	Delete(ctx context.Context, id uint) error
	CountActiveByEquipment(ctx context.Context, equipmentID uint) (int64, error)
	MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error
	ReturnActiveByEvent(ctx context.Context, tx *gorm.DB, eventID uint, returnedDate time.Time) error
	GetDB() *gorm.DB
}

type allocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

func (r *allocationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *allocationRepository) Create(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error {
	return tx.WithContext(ctx).Create(allocation).Error
}

func (r *allocationRepository) FindByID(ctx context.Context, id uint) (*models.EventAllocation, error) {
	var allocation models.EventAllocation
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		First(&allocation, id).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

// FindByEventID returns the event's allocations with their equipment joined in
// one query, newest-allocated last.
func (r *allocationRepository) FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventAllocation, error) {
	var allocations []models.EventAllocation
	if err := tx.WithContext(ctx).
		Preload("Equipment").
		Where("event_id = ?", eventID).
		Order("allocated_date ASC, id ASC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

// FindConflicts scans for active allocations of the equipment unit held by a
// different event on the given date, where that event's lifecycle state makes
// the allocation binding.
func (r *allocationRepository) FindConflicts(ctx context.Context, tx *gorm.DB, equipmentID, excludeEventID uint, date time.Time) ([]ConflictingEvent, error) {
	var conflicts []ConflictingEvent
	err := tx.WithContext(ctx).
		Model(&models.EventAllocation{}).
		Select("events.id AS event_id, events.title AS title").
		Joins("JOIN events ON events.id = event_allocations.event_id").
		Where("event_allocations.equipment_id = ?", equipmentID).
		Where("event_allocations.event_id <> ?", excludeEventID).
		Where("event_allocations.status IN ?", []models.AllocationStatus{models.AllocationAllocated, models.AllocationInUse}).
		Where("events.event_date = ?", date.Format("2006-01-02")).
		Where("events.status IN ?", models.CommittedStatuses).
		Distinct().
		Scan(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *allocationRepository) Update(ctx context.Context, tx *gorm.DB, allocation *models.EventAllocation) error {
	return tx.WithContext(ctx).Save(allocation).Error
}

func (r *allocationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EventAllocation{}, id).Error
}

func (r *allocationRepository) CountActiveByEquipment(ctx context.Context, equipmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EventAllocation{}).
		Where("equipment_id = ? AND status <> ?", equipmentID, models.AllocationReturned).
		Count(&count).Error
	return count, err
}

// MarkInUseByEvent flips the event's pending allocations to in-use. Runs as
// the preparation→assembly side effect.
func (r *allocationRepository) MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return tx.WithContext(ctx).
		Model(&models.EventAllocation{}).
		Where("event_id = ? AND status = ?", eventID, models.AllocationAllocated).
		Update("status", models.AllocationInUse).Error
}

// ReturnActiveByEvent closes every non-returned allocation of the event,
// stamping the return date. Runs when the event is cancelled.
func (r *allocationRepository) ReturnActiveByEvent(ctx context.Context, tx *gorm.DB, eventID uint, returnedDate time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.EventAllocation{}).
		Where("event_id = ? AND status <> ?", eventID, models.AllocationReturned).
		Updates(map[string]any{
			"status":        models.AllocationReturned,
			"returned_date": returnedDate,
		}).Error
}
