package service

import (
	"context"
	"time"

	clientrepo "github.com/fieldtrack/fieldtrack-backend/internal/client/repository"

	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/domain"
	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/events"
	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// CheckinService handles check-in and check-out operations
type CheckinService struct {
	repo    *repository.CheckinRepository
	clients *clientrepo.ClientRepository
	events  *events.Publisher
	logger  *logger.Logger
	now     func() time.Time
}

// NewCheckinService creates a new check-in service
func NewCheckinService(repo *repository.CheckinRepository, clients *clientrepo.ClientRepository, pub *events.Publisher, log *logger.Logger) *CheckinService {
	return &CheckinService{
		repo:    repo,
		clients: clients,
		events:  pub,
		logger:  log.WithComponent("checkin-service"),
		now:     time.Now,
	}
}

// CheckInRequest is the payload for checking in at a client site
type CheckInRequest struct {
	ClientID           string   `json:"client_id" validate:"required,uuid"`
	DistanceFromClient *float64 `json:"distance_from_client,omitempty" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CheckOutRequest is the payload for checking out of the current session
type CheckOutRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CheckIn opens a new attendance session. An employee can hold at most one
// open session at a time.
func (s *CheckinService) CheckIn(ctx context.Context, employeeID string, req *CheckInRequest) (*domain.Checkin, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	active, err := s.repo.GetActiveByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}
	if active != nil {
		return nil, errors.BadRequest("already checked in; check out before starting a new session")
	}

	checkin := &domain.Checkin{
		EmployeeID:         employeeID,
		ClientID:           req.ClientID,
		CheckinTime:        s.now().UTC(),
		DistanceFromClient: req.DistanceFromClient,
		Notes:              req.Notes,
	}

	if err := s.repo.Create(ctx, checkin); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("checkin_id", checkin.ID).
		Str("employee_id", employeeID).
		Str("client_id", req.ClientID).
		Msg("employee checked in")

	s.events.CheckinCreated(ctx, checkin)

	return checkin, nil
}

// CheckOut closes the employee's open session
func (s *CheckinService) CheckOut(ctx context.Context, employeeID string, req *CheckOutRequest) (*domain.Checkin, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	active, err := s.repo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.BadRequest("no active check-in to check out from")
		}
		return nil, err
	}

	closed, err := s.repo.Close(ctx, active.ID, s.now().UTC(), req.Notes)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("checkin_id", closed.ID).
		Str("employee_id", employeeID).
		Msg("employee checked out")

	s.events.CheckinCompleted(ctx, closed)

	return closed, nil
}

// History returns the employee's recent check-ins, most recent first
func (s *CheckinService) History(ctx context.Context, employeeID string, limit int) ([]*domain.CheckinWithClient, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByEmployee(ctx, employeeID, limit)
}
