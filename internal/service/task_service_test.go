package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

func openEventRepo(status models.EventStatus) *mockEventRepo {
	return &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Title: "Aniversário 40 anos", Status: status}, nil
		},
	}
}

func TestCreateTask_Success(t *testing.T) {
	taskRepo := &mockTaskRepo{
		createFn: func(ctx context.Context, task *models.EventTask) error {
			task.ID = 1
			return nil
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPlanning), nil)

	task, err := svc.CreateTask(context.Background(), 5, "Conferir mangueiras", 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), task.ID)
	assert.Equal(t, uint(5), task.EventID)
	assert.Equal(t, 2, task.OrderIndex)
	assert.False(t, task.Completed)
}

func TestCreateTask_MissingDescription(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, openEventRepo(models.StatusPlanning), nil)

	_, err := svc.CreateTask(context.Background(), 5, "", 0)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateTask_EventNotFound(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, &mockEventRepo{}, nil)

	_, err := svc.CreateTask(context.Background(), 404, "Conferir mangueiras", 0)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateTask_ClosedEventRejected(t *testing.T) {
	for _, status := range []models.EventStatus{models.StatusCompleted, models.StatusCancelled} {
		svc := NewTaskService(&mockTaskRepo{}, openEventRepo(status), nil)

		_, err := svc.CreateTask(context.Background(), 5, "Conferir mangueiras", 0)

		assert.ErrorIs(t, err, ErrEventClosed, "status %s", status)
	}
}

func TestToggleTask_Complete(t *testing.T) {
	var saved *models.EventTask
	taskRepo := &mockTaskRepo{
		findFn: func(ctx context.Context, id uint) (*models.EventTask, error) {
			return &models.EventTask{ID: id, EventID: 5, Description: "Testar pressão do CO2"}, nil
		},
		updateFn: func(ctx context.Context, task *models.EventTask) error {
			saved = task
			return nil
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPreparation), nil)

	task, err := svc.ToggleTask(context.Background(), 3, true, "ana")

	assert.NoError(t, err)
	assert.True(t, task.Completed)
	assert.NotNil(t, task.CompletedAt)
	assert.Equal(t, "ana", task.CompletedBy)
	assert.Same(t, task, saved)
}

func TestToggleTask_CompleteIsIdempotent(t *testing.T) {
	stamp := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	updates := 0
	taskRepo := &mockTaskRepo{
		findFn: func(ctx context.Context, id uint) (*models.EventTask, error) {
			return &models.EventTask{
				ID:          id,
				Completed:   true,
				CompletedAt: &stamp,
				CompletedBy: "ana",
			}, nil
		},
		updateFn: func(ctx context.Context, task *models.EventTask) error {
			updates++
			return nil
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPreparation), nil)

	task, err := svc.ToggleTask(context.Background(), 3, true, "bruno")

	assert.NoError(t, err)
	assert.Equal(t, 0, updates)
	// the original stamp and author survive the repeat
	assert.Equal(t, &stamp, task.CompletedAt)
	assert.Equal(t, "ana", task.CompletedBy)
}

func TestToggleTask_Uncomplete(t *testing.T) {
	stamp := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	taskRepo := &mockTaskRepo{
		findFn: func(ctx context.Context, id uint) (*models.EventTask, error) {
			return &models.EventTask{ID: id, Completed: true, CompletedAt: &stamp, CompletedBy: "ana"}, nil
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPreparation), nil)

	task, err := svc.ToggleTask(context.Background(), 3, false, "ana")

	assert.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Empty(t, task.CompletedBy)
}

func TestToggleTask_NotFound(t *testing.T) {
	taskRepo := &mockTaskRepo{
		findFn: func(ctx context.Context, id uint) (*models.EventTask, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPlanning), nil)

	_, err := svc.ToggleTask(context.Background(), 999, true, "ana")

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask_NotFound(t *testing.T) {
	svc := NewTaskService(&mockTaskRepo{}, openEventRepo(models.StatusPlanning), nil)

	err := svc.DeleteTask(context.Background(), 999)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask_Success(t *testing.T) {
	deleted := uint(0)
	taskRepo := &mockTaskRepo{
		findFn: func(ctx context.Context, id uint) (*models.EventTask, error) {
			return &models.EventTask{ID: id, EventID: 5}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	svc := NewTaskService(taskRepo, openEventRepo(models.StatusPlanning), nil)

	err := svc.DeleteTask(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), deleted)
}
