//go:build integration

package integration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

var festaDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func createTestClient(t *testing.T, name string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, Phone: "11 98888-7777"}
	require.NoError(t, testDB.Create(client).Error)
	return client
}

func createTestEvent(t *testing.T, title string, status models.EventStatus, date time.Time) *models.Event {
	t.Helper()
	client := createTestClient(t, "Cliente "+title)
	budget := 2000.0
	event := &models.Event{
		Title:           title,
		ClientID:        &client.ID,
		EventDate:       date,
		EventTime:       "18:00",
		Status:          status,
		Priority:        models.PriorityMedium,
		BarrelQuantity:  2,
		EstimatedBudget: &budget,
	}
	require.NoError(t, testDB.Create(event).Error)
	return event
}

func createTestEquipment(t *testing.T, code, category string) *models.Equipment {
	t.Helper()
	equipment := &models.Equipment{
		Code:     code,
		Name:     fmt.Sprintf("%s %s", category, code),
		Category: category,
		Status:   models.EquipmentAvailable,
	}
	require.NoError(t, testDB.Create(equipment).Error)
	return equipment
}

func newServices() (service.EventService, service.AllocationService, service.TaskService, service.EquipmentService) {
	eventRepo := repository.NewEventRepository(testDB)
	clientRepo := repository.NewClientRepository(testDB)
	allocRepo := repository.NewAllocationRepository(testDB)
	equipmentRepo := repository.NewEquipmentRepository(testDB)
	taskRepo := repository.NewTaskRepository(testDB)

	eventSvc := service.NewEventService(eventRepo, clientRepo, allocRepo, equipmentRepo, taskRepo, nil)
	allocSvc := service.NewAllocationService(allocRepo, eventRepo, equipmentRepo, nil)
	taskSvc := service.NewTaskService(taskRepo, eventRepo, nil)
	equipmentSvc := service.NewEquipmentService(equipmentRepo, allocRepo, nil)
	return eventSvc, allocSvc, taskSvc, equipmentSvc
}

// satisfyRequirements allocates one unit of every required category to the
// event. The code suffix keeps equipment codes unique across tests.
func satisfyRequirements(t *testing.T, allocSvc service.AllocationService, eventID uint, suffix string) {
	t.Helper()
	for _, category := range []string{"chopeira", "cilindro_co2", "manometro", "pingadeira", "extratora"} {
		equipment := createTestEquipment(t, fmt.Sprintf("%s-%s", category, suffix), category)
		_, err := allocSvc.Add(t.Context(), eventID, service.AllocationInput{
			EquipmentID: equipment.ID,
			Quantity:    1,
		})
		require.NoError(t, err)
	}
}
