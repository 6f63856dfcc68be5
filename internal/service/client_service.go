package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/pkg/rabbitmq"
)

type ClientService interface {
	CreateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id uint) error
}

type clientService struct {
	clientRepo repository.ClientRepository
	eventRepo  repository.EventRepository
	publisher  *rabbitmq.Publisher
}

func NewClientService(clientRepo repository.ClientRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) ClientService {
	return &clientService{clientRepo: clientRepo, eventRepo: eventRepo, publisher: publisher}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.Client) error {
	if client.Name == "" {
		return NewValidationError("name is required")
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("client.created", client)
	}
	return nil
}

func (s *clientService) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, client *models.Client) error {
	if client.Name == "" {
		return NewValidationError("name is required")
	}
	existing, err := s.GetClient(ctx, client.ID)
	if err != nil {
		return err
	}
	client.CreatedAt = existing.CreatedAt

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return fmt.Errorf("update client: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("client.updated", client)
	}
	return nil
}

// DeleteClient is blocked while events still reference the client.
func (s *clientService) DeleteClient(ctx context.Context, id uint) error {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return err
	}

	events, err := s.eventRepo.CountByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("count client events: %w", err)
	}
	if events > 0 {
		return &ReferentialError{Entity: "client", References: events}
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("client.deleted", map[string]any{"id": client.ID, "name": client.Name})
	}
	return nil
}
