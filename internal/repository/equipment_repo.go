package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

type EquipmentFilter struct {
	Status   *models.EquipmentStatus
	Category *string
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	FindByID(ctx context.Context, id uint) (*models.Equipment, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Equipment, error)
	FindByCode(ctx context.Context, code string) (*models.Equipment, error)
	FindAll(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error)
	Update(ctx context.Context, equipment *models.Equipment) error
	Delete(ctx context.Context, id uint) error
	MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error
	ReleaseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error
}

type equipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := r.db.WithContext(ctx).First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

// FindByIDForUpdate locks the equipment row within the given transaction.
// Concurrent allocation attempts for the same unit serialize on this lock,
// which is what makes the conflict check-and-insert race-free.
func (r *equipmentRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) FindByCode(ctx context.Context, code string) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&equipment).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) FindAll(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error) {
	var equipment []models.Equipment
	q := r.db.WithContext(ctx)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if err := q.Order("name ASC").Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

func (r *equipmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Equipment{}, id).Error
}

// MarkInUseByEvent flips the units behind the event's pending allocations to
// in-use. Must run before the allocations themselves are flipped.
func (r *equipmentRepository) MarkInUseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Equipment{}).
		Where("id IN (?)",
			tx.Model(&models.EventAllocation{}).
				Select("equipment_id").
				Where("event_id = ? AND status = ?", eventID, models.AllocationAllocated),
		).
		Update("status", models.EquipmentInUse).Error
}

// ReleaseByEvent frees units the event had in use. Must run before the
// allocations are marked returned. A unit another event still holds in use
// on a different date is skipped; it stays in-use until that event releases
// it too.
func (r *equipmentRepository) ReleaseByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Equipment{}).
		Where("status = ?", models.EquipmentInUse).
		Where("id IN (?)",
			tx.Model(&models.EventAllocation{}).
				Select("equipment_id").
				Where("event_id = ? AND status <> ?", eventID, models.AllocationReturned),
		).
		Where("id NOT IN (?)",
			tx.Model(&models.EventAllocation{}).
				Select("equipment_id").
				Where("event_id <> ? AND status = ?", eventID, models.AllocationInUse),
		).
		Update("status", models.EquipmentAvailable).Error
}
