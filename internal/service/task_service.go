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

type TaskService interface {
	ListForEvent(ctx context.Context, eventID uint) ([]models.EventTask, error)
	CreateTask(ctx context.Context, eventID uint, description string, orderIndex int) (*models.EventTask, error)
	ToggleTask(ctx context.Context, taskID uint, completed bool, userID string) (*models.EventTask, error)
	DeleteTask(ctx context.Context, taskID uint) error
}

type taskService struct {
	taskRepo  repository.TaskRepository
	eventRepo repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewTaskService(taskRepo repository.TaskRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) TaskService {
	return &taskService{taskRepo: taskRepo, eventRepo: eventRepo, publisher: publisher}
}

func (s *taskService) ListForEvent(ctx context.Context, eventID uint) ([]models.EventTask, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.taskRepo.FindByEventID(ctx, s.taskRepo.GetDB(), eventID)
}

func (s *taskService) CreateTask(ctx context.Context, eventID uint, description string, orderIndex int) (*models.EventTask, error) {
	if description == "" {
		return nil, NewValidationError("description is required")
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.Status.IsTerminal() {
		return nil, ErrEventClosed
	}

	task := &models.EventTask{
		EventID:     eventID,
		Description: description,
		OrderIndex:  orderIndex,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("task.created", task)
	}
	return task, nil
}

// ToggleTask sets the completion flag. Idempotent: re-completing a completed
// task keeps the original completion stamp instead of minting a new one.
func (s *taskService) ToggleTask(ctx context.Context, taskID uint, completed bool, userID string) (*models.EventTask, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if task.Completed == completed {
		return task, nil
	}

	task.Completed = completed
	if completed {
		now := time.Now()
		task.CompletedAt = &now
		task.CompletedBy = userID
	} else {
		task.CompletedAt = nil
		task.CompletedBy = ""
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("task.toggled", task)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID uint) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("task.deleted", map[string]any{"id": task.ID, "event_id": task.EventID})
	}
	return nil
}
