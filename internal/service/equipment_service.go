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

// EquipmentUpdate carries a partial catalog edit; nil fields are left
// untouched.
type EquipmentUpdate struct {
	Code            *string
	Name            *string
	Description     *string
	Category        *string
	Status          *models.EquipmentStatus
	AcquisitionDate *time.Time
	Value           *float64
	Observations    *string
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, equipment *models.Equipment) error
	GetEquipment(ctx context.Context, id uint) (*models.Equipment, error)
	ListEquipment(ctx context.Context, filter repository.EquipmentFilter) ([]models.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint, update EquipmentUpdate) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint) error
}

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	allocRepo     repository.AllocationRepository
	publisher     *rabbitmq.Publisher
}

func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	allocRepo repository.AllocationRepository,
	publisher *rabbitmq.Publisher,
) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		allocRepo:     allocRepo,
		publisher:     publisher,
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, equipment *models.Equipment) error {
	if equipment.Code == "" {
		return NewValidationError("code is required")
	}
	if equipment.Name == "" {
		return NewValidationError("name is required")
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentAvailable
	}
	if !equipment.Status.Valid() {
		return NewValidationError("unknown equipment status %q", equipment.Status)
	}

	if _, err := s.equipmentRepo.FindByCode(ctx, equipment.Code); err == nil {
		return NewValidationError("equipment code %q is already in use", equipment.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup equipment code: %w", err)
	}

	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return fmt.Errorf("create equipment: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("equipment.created", equipment)
	}
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) ListEquipment(ctx context.Context, filter repository.EquipmentFilter) ([]models.Equipment, error) {
	return s.equipmentRepo.FindAll(ctx, filter)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id uint, update EquipmentUpdate) (*models.Equipment, error) {
	equipment, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Code != nil && *update.Code != equipment.Code {
		if *update.Code == "" {
			return nil, NewValidationError("code cannot be empty")
		}
		if _, err := s.equipmentRepo.FindByCode(ctx, *update.Code); err == nil {
			return nil, NewValidationError("equipment code %q is already in use", *update.Code)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup equipment code: %w", err)
		}
		equipment.Code = *update.Code
	}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, NewValidationError("name cannot be empty")
		}
		equipment.Name = *update.Name
	}
	if update.Description != nil {
		equipment.Description = *update.Description
	}
	if update.Category != nil {
		equipment.Category = *update.Category
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, NewValidationError("unknown equipment status %q", *update.Status)
		}
		equipment.Status = *update.Status
	}
	if update.AcquisitionDate != nil {
		equipment.AcquisitionDate = update.AcquisitionDate
	}
	if update.Value != nil {
		equipment.Value = update.Value
	}
	if update.Observations != nil {
		equipment.Observations = *update.Observations
	}

	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("update equipment: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("equipment.updated", equipment)
	}
	return equipment, nil
}

// DeleteEquipment refuses to remove a unit that still has non-returned
// allocations; the ledger must be cleared first.
func (s *equipmentService) DeleteEquipment(ctx context.Context, id uint) error {
	equipment, err := s.GetEquipment(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.allocRepo.CountActiveByEquipment(ctx, id)
	if err != nil {
		return fmt.Errorf("count active allocations: %w", err)
	}
	if active > 0 {
		return &ReferentialError{Entity: "equipment", References: active}
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("equipment.deleted", map[string]any{"id": equipment.ID, "code": equipment.Code})
	}
	return nil
}
