package service

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/client/domain"
	"github.com/fieldtrack/fieldtrack-backend/internal/client/events"
	"github.com/fieldtrack/fieldtrack-backend/internal/client/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// ClientService handles client site management and assignments
type ClientService struct {
	repo   *repository.ClientRepository
	events *events.Publisher
	logger *logger.Logger
}

// NewClientService creates a new client service
func NewClientService(repo *repository.ClientRepository, pub *events.Publisher, log *logger.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		events: pub,
		logger: log.WithComponent("client-service"),
	}
}

// CreateClientRequest is the payload for registering a client site
type CreateClientRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=1000"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdateClientRequest is the payload for updating a client site
type UpdateClientRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=1000"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// Create registers a new client site
func (s *ClientService) Create(ctx context.Context, createdBy string, req *CreateClientRequest) (*domain.Client, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	client := &domain.Client{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Msg("client created")
	s.events.ClientCreated(ctx, client)

	return client, nil
}

// Get returns a client site by ID
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

// List lists all client sites
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

// ListAssigned lists the client sites assigned to an employee
func (s *ClientService) ListAssigned(ctx context.Context, employeeID string) ([]*domain.Client, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

// Update updates a client site
func (s *ClientService) Update(ctx context.Context, id string, req *UpdateClientRequest) (*domain.Client, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Address = req.Address
	client.Latitude = req.Latitude
	client.Longitude = req.Longitude

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	s.events.ClientUpdated(ctx, client)

	return client, nil
}

// Delete removes a client site
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("client_id", id).Msg("client deleted")
	s.events.ClientDeleted(ctx, id)

	return nil
}

// Assign links an employee to a client site
func (s *ClientService) Assign(ctx context.Context, clientID, employeeID string) error {
	return s.repo.Assign(ctx, clientID, employeeID)
}

// Unassign removes an employee's assignment to a client site
func (s *ClientService) Unassign(ctx context.Context, clientID, employeeID string) error {
	return s.repo.Unassign(ctx, clientID, employeeID)
}
