package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.EventTask) error
	FindByID(ctx context.Context, id uint) (*models.EventTask, error)
	FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventTask, error)
	CountIncompleteByEvent(ctx context.Context, tx *gorm.DB, eventID uint) (int64, error)
	Update(ctx context.Context, task *models.EventTask) error
	Delete(ctx context.Context, id uint) error
	GetDB() *gorm.DB
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *taskRepository) Create(ctx context.Context, task *models.EventTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) FindByID(ctx context.Context, id uint) (*models.EventTask, error) {
	var task models.EventTask
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) FindByEventID(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.EventTask, error) {
	var tasks []models.EventTask
	if err := tx.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("order_index ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CountIncompleteByEvent(ctx context.Context, tx *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.EventTask{}).
		Where("event_id = ? AND completed = ?", eventID, false).
		Count(&count).Error
	return count, err
}

func (r *taskRepository) Update(ctx context.Context, task *models.EventTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EventTask{}, id).Error
}
