package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldtrack/fieldtrack-backend/internal/user/domain"
	"github.com/fieldtrack/fieldtrack-backend/internal/user/events"
	"github.com/fieldtrack/fieldtrack-backend/internal/user/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// UserService handles employee account management. All operations are
// scoped to the calling manager's team.
type UserService struct {
	repo   *repository.UserRepository
	events *events.Publisher
	logger *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, pub *events.Publisher, log *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		events: pub,
		logger: log.WithComponent("user-service"),
	}
}

// CreateEmployeeRequest is the payload for creating an employee
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateEmployeeRequest is the payload for updating an employee
type UpdateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// CreateEmployee creates an employee account belonging to the manager
func (s *UserService) CreateEmployee(ctx context.Context, managerID string, req *CreateEmployeeRequest) (*domain.User, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password")
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		ManagerID:    &managerID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("employee_id", user.ID).
		Str("manager_id", managerID).
		Msg("employee created")

	s.events.EmployeeCreated(ctx, user)

	return user, nil
}

// ListTeam lists the manager's employees
func (s *UserService) ListTeam(ctx context.Context, managerID string) ([]*domain.User, error) {
	return s.repo.ListByManager(ctx, managerID)
}

// GetTeamMember returns one of the manager's employees. An employee outside
// the manager's team is reported as not found, not forbidden.
func (s *UserService) GetTeamMember(ctx context.Context, managerID, employeeID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if user.ManagerID == nil || *user.ManagerID != managerID {
		return nil, errors.NotFound("user")
	}

	return user, nil
}

// UpdateEmployee updates an employee's name and email
func (s *UserService) UpdateEmployee(ctx context.Context, managerID, employeeID string, req *UpdateEmployeeRequest) (*domain.User, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.GetTeamMember(ctx, managerID, employeeID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.events.EmployeeUpdated(ctx, user)

	return user, nil
}

// DeleteEmployee removes an employee from the manager's team
func (s *UserService) DeleteEmployee(ctx context.Context, managerID, employeeID string) error {
	if _, err := s.GetTeamMember(ctx, managerID, employeeID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}

	s.logger.Info().
		Str("employee_id", employeeID).
		Str("manager_id", managerID).
		Msg("employee deleted")

	s.events.EmployeeDeleted(ctx, employeeID)

	return nil
}
