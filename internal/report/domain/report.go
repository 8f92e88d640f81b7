package domain

import (
	"time"
)

// AttendanceRow is one record of the bulk daily fetch. The fetch left-joins
// employees to their check-ins for the day, so an employee with no activity
// produces exactly one row with a NULL CheckinID, and an employee with N
// check-ins produces N rows.
type AttendanceRow struct {
	EmployeeID    string     `db:"employee_id"`
	EmployeeName  string     `db:"employee_name"`
	EmployeeEmail string     `db:"employee_email"`
	CheckinID     *string    `db:"checkin_id"`
	CheckinTime   *time.Time `db:"checkin_time"`
	CheckoutTime  *time.Time `db:"checkout_time"`
	Distance      *float64   `db:"distance_from_client"`
	Notes         *string    `db:"notes"`
	ClientID      *string    `db:"client_id"`
	ClientName    *string    `db:"client_name"`
}

// HasCheckin reports whether the row carries a check-in. Presence is decided
// by the check-in ID alone; other session fields may legitimately be NULL.
func (r *AttendanceRow) HasCheckin() bool {
	return r.CheckinID != nil
}

// SessionDetail is one check-in occurrence in the employee breakdown. Hours
// is nil while the session is open: open sessions are never estimated to now
// in the report path.
type SessionDetail struct {
	CheckinID    string     `json:"checkin_id"`
	ClientName   *string    `json:"client_name"`
	CheckinTime  time.Time  `json:"checkin_time"`
	CheckoutTime *time.Time `json:"checkout_time"`
	Hours        *float64   `json:"hours"`
	Distance     *float64   `json:"distance_from_client"`
	Notes        *string    `json:"notes"`
}

// EmployeeSummary is the per-employee half of the daily report.
type EmployeeSummary struct {
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	EmployeeEmail     string          `json:"employee_email"`
	TotalCheckins     int             `json:"total_checkins"`
	TotalWorkingHours float64         `json:"total_working_hours"`
	ClientsVisited    int             `json:"clients_visited"`
	Checkins          []SessionDetail `json:"checkins"`
}

// TeamSummary is the team-wide half of the daily report.
//
// TotalClientsVisited is the sum of each employee's distinct-client count; a
// client visited by two employees counts twice. That matches the original
// per-employee-then-summed computation and is kept deliberately.
type TeamSummary struct {
	TotalEmployees      int     `json:"total_employees"`
	TotalCheckins       int     `json:"total_checkins"`
	TotalWorkingHours   float64 `json:"total_working_hours"`
	TotalClientsVisited int     `json:"total_clients_visited"`
}

// DailySummary is the full two-level report for one calendar day. The
// requested date and filter are echoed back so callers can correlate
// request to response.
type DailySummary struct {
	Date              string            `json:"date"`
	EmployeeIDFilter  *string           `json:"employee_id_filter"`
	TeamSummary       TeamSummary       `json:"team_summary"`
	EmployeeBreakdown []EmployeeSummary `json:"employee_breakdown"`
}

// HasActivity reports whether any employee in the breakdown recorded at
// least one check-in. An all-zero breakdown (or an empty one) is still a
// success response, just carried with a "no data" notice.
func (s *DailySummary) HasActivity() bool {
	for _, emp := range s.EmployeeBreakdown {
		if emp.TotalCheckins > 0 {
			return true
		}
	}
	return false
}
