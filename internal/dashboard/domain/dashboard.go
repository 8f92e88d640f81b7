package domain

import (
	"time"
)

// ManagerStats is the manager's team overview for today
type ManagerStats struct {
	TeamMembers    int `json:"team_members"`
	TodayCheckins  int `json:"today_checkins"`
	ActiveSessions int `json:"active_sessions"`
}

// EmployeeStats is the employee's own overview for today
type EmployeeStats struct {
	AssignedClients int            `json:"assigned_clients"`
	TodayCheckins   int            `json:"today_checkins"`
	ActiveSession   *ActiveSession `json:"active_session"`
}

// ActiveSession is the employee's currently open session, with a live
// elapsed estimate. The to-now estimate belongs to the dashboard only;
// report hours stay undefined while a session is open.
type ActiveSession struct {
	CheckinID      string    `json:"checkin_id" db:"checkin_id"`
	ClientID       string    `json:"client_id" db:"client_id"`
	ClientName     string    `json:"client_name" db:"client_name"`
	CheckinTime    time.Time `json:"checkin_time" db:"checkin_time"`
	ElapsedMinutes int       `json:"elapsed_minutes" db:"-"`
}
