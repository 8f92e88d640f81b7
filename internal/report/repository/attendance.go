package repository

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
)

// AttendanceRepository supplies joined attendance rows for the report engine
type AttendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// FetchDay returns the joined attendance rows for one calendar day, scoped
// to the manager's team (and to a single employee when filter is given).
//
// This is deliberately a single bulk query rather than one query per
// employee: the left join guarantees one row per employee with no check-ins
// that day, and the ordering (employee name, then check-in time) is the
// ordering the aggregation preserves in its output.
func (r *AttendanceRepository) FetchDay(ctx context.Context, managerID, date string, employeeFilter *string) ([]domain.AttendanceRow, error) {
	query := `
		SELECT
			u.id AS employee_id,
			u.name AS employee_name,
			u.email AS employee_email,
			ch.id AS checkin_id,
			ch.checkin_time,
			ch.checkout_time,
			ch.distance_from_client,
			ch.notes,
			c.id AS client_id,
			c.name AS client_name
		FROM users u
		LEFT JOIN checkins ch ON u.id = ch.employee_id AND date(ch.checkin_time) = $1
		LEFT JOIN clients c ON ch.client_id = c.id
		WHERE u.manager_id = $2
	`
	args := []interface{}{date, managerID}

	if employeeFilter != nil {
		query += ` AND u.id = $3`
		args = append(args, *employeeFilter)
	}

	query += ` ORDER BY u.name, ch.checkin_time`

	rows := make([]domain.AttendanceRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}
