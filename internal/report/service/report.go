package service

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/domain"
	"github.com/fieldtrack/fieldtrack-backend/internal/report/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// ReportService generates manager-facing attendance reports
type ReportService struct {
	repo   *repository.AttendanceRepository
	logger *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(repo *repository.AttendanceRepository, log *logger.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		logger: log.WithComponent("report-service"),
	}
}

// DailySummary computes the per-employee breakdown and team totals for one
// calendar day of the manager's team. Validation happens before any data
// access; the fetch is a single bulk read and the fold runs entirely in
// memory, so each request is an independent pure computation.
func (s *ReportService) DailySummary(ctx context.Context, managerID, date, employeeID string) (*domain.DailySummary, error) {
	params, err := ValidateParams(date, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FetchDay(ctx, managerID, params.Date, params.EmployeeFilter)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("date", params.Date).
			Str("manager_id", managerID).
			Str("employee_filter", employeeID).
			Msg("daily summary fetch failed")
		return nil, errors.Aggregation(err)
	}

	summary := buildDailySummary(params, rows)

	s.logger.Debug().
		Str("date", params.Date).
		Int("employees", summary.TeamSummary.TotalEmployees).
		Int("checkins", summary.TeamSummary.TotalCheckins).
		Msg("daily summary generated")

	return summary, nil
}
