package service

import (
	"context"
	"time"

	"github.com/fieldtrack/fieldtrack-backend/internal/dashboard/domain"
	"github.com/fieldtrack/fieldtrack-backend/internal/dashboard/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// DashboardService computes the role-dependent dashboard views
type DashboardService struct {
	repo   *repository.DashboardRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo *repository.DashboardRepository, log *logger.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: log.WithComponent("dashboard-service"),
		now:    time.Now,
	}
}

// ManagerStats returns the manager's team overview for today
func (s *DashboardService) ManagerStats(ctx context.Context, managerID string) (*domain.ManagerStats, error) {
	today := s.now().UTC().Format("2006-01-02")

	teamMembers, err := s.repo.CountTeamMembers(ctx, managerID)
	if err != nil {
		return nil, err
	}

	todayCheckins, err := s.repo.CountTeamCheckinsOnDate(ctx, managerID, today)
	if err != nil {
		return nil, err
	}

	activeSessions, err := s.repo.CountActiveTeamSessions(ctx, managerID)
	if err != nil {
		return nil, err
	}

	return &domain.ManagerStats{
		TeamMembers:    teamMembers,
		TodayCheckins:  todayCheckins,
		ActiveSessions: activeSessions,
	}, nil
}

// EmployeeStats returns the employee's own overview for today. The open
// session, if any, carries a live elapsed-minutes estimate; this is the one
// place open-session duration is ever estimated.
func (s *DashboardService) EmployeeStats(ctx context.Context, employeeID string) (*domain.EmployeeStats, error) {
	today := s.now().UTC().Format("2006-01-02")

	assignedClients, err := s.repo.CountAssignedClients(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	todayCheckins, err := s.repo.CountEmployeeCheckinsOnDate(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetActiveSession(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		session.ElapsedMinutes = int(s.now().Sub(session.CheckinTime).Minutes())
	}

	return &domain.EmployeeStats{
		AssignedClients: assignedClients,
		TodayCheckins:   todayCheckins,
		ActiveSession:   session,
	}, nil
}
