package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

// EventFilter narrows FindAll; nil fields are ignored.
type EventFilter struct {
	Status   *models.EventStatus
	Priority *models.EventPriority
	ClientID *uint
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error)
	Update(ctx context.Context, tx *gorm.DB, event *models.Event) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.EventStatus) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByClient(ctx context.Context, clientID uint) (int64, error)
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction, serializing concurrent lifecycle transitions.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Allocations.Equipment")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if err := q.Order("event_date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.EventStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the event row; allocations and tasks go with it via the
// ON DELETE CASCADE constraints set up at migration time.
func (r *eventRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Event{}, id).Error
}

func (r *eventRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}
