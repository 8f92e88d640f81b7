package repository

import (
	"context"
	"database/sql"

	"github.com/fieldtrack/fieldtrack-backend/internal/dashboard/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
)

// DashboardRepository supplies the counters behind the dashboard views
type DashboardRepository struct {
	db *database.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CountTeamMembers counts the manager's employees
func (r *DashboardRepository) CountTeamMembers(ctx context.Context, managerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE manager_id = $1`
	err := r.db.GetContext(ctx, &count, query, managerID)
	return count, err
}

// CountTeamCheckinsOnDate counts the team's check-ins for one day
func (r *DashboardRepository) CountTeamCheckinsOnDate(ctx context.Context, managerID, date string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM checkins ch
		JOIN users u ON u.id = ch.employee_id
		WHERE u.manager_id = $1 AND date(ch.checkin_time) = $2
	`
	err := r.db.GetContext(ctx, &count, query, managerID, date)
	return count, err
}

// CountActiveTeamSessions counts the team's currently open sessions
func (r *DashboardRepository) CountActiveTeamSessions(ctx context.Context, managerID string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM checkins ch
		JOIN users u ON u.id = ch.employee_id
		WHERE u.manager_id = $1 AND ch.checkout_time IS NULL
	`
	err := r.db.GetContext(ctx, &count, query, managerID)
	return count, err
}

// CountAssignedClients counts the client sites assigned to an employee
func (r *DashboardRepository) CountAssignedClients(ctx context.Context, employeeID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM client_assignments WHERE employee_id = $1`
	err := r.db.GetContext(ctx, &count, query, employeeID)
	return count, err
}

// CountEmployeeCheckinsOnDate counts one employee's check-ins for one day
func (r *DashboardRepository) CountEmployeeCheckinsOnDate(ctx context.Context, employeeID, date string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM checkins
		WHERE employee_id = $1 AND date(checkin_time) = $2
	`
	err := r.db.GetContext(ctx, &count, query, employeeID, date)
	return count, err
}

// GetActiveSession returns the employee's open session joined with the
// client name, or nil when there is none.
func (r *DashboardRepository) GetActiveSession(ctx context.Context, employeeID string) (*domain.ActiveSession, error) {
	var session domain.ActiveSession
	query := `
		SELECT ch.id AS checkin_id, ch.client_id, c.name AS client_name, ch.checkin_time
		FROM checkins ch
		JOIN clients c ON c.id = ch.client_id
		WHERE ch.employee_id = $1 AND ch.checkout_time IS NULL
		ORDER BY ch.checkin_time DESC
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &session, query, employeeID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}
