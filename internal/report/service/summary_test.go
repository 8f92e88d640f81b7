package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/domain"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
func ts(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, v)
	require.NoError(t, err)
	return parsed
}

func checkinRow(t *testing.T, employeeID, name, email, checkinID, clientID, clientName, start string, end *string) domain.AttendanceRow {
	t.Helper()
	row := domain.AttendanceRow{
		EmployeeID:    employeeID,
		EmployeeName:  name,
		EmployeeEmail: email,
		CheckinID:     strPtr(checkinID),
		ClientID:      strPtr(clientID),
		ClientName:    strPtr(clientName),
		CheckinTime:   timePtr(ts(t, start)),
	}
	if end != nil {
		row.CheckoutTime = timePtr(ts(t, *end))
	}
	return row
}

func noCheckinRow(employeeID, name, email string) domain.AttendanceRow {
	return domain.AttendanceRow{
		EmployeeID:    employeeID,
		EmployeeName:  name,
		EmployeeEmail: email,
	}
}

func TestBuildDailySummary_OpenAndClosedSessions(t *testing.T) {
	end := "2024-03-01T11:00:00Z"
	rows := []domain.AttendanceRow{
		checkinRow(t, "e101", "Alice", "alice@example.com", "chk-1", "c1", "Client One", "2024-03-01T09:00:00Z", &end),
		checkinRow(t, "e101", "Alice", "alice@example.com", "chk-2", "c2", "Client Two", "2024-03-01T13:00:00Z", nil),
	}

	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, rows)

	require.Len(t, summary.EmployeeBreakdown, 1)
	emp := summary.EmployeeBreakdown[0]

	assert.Equal(t, "e101", emp.EmployeeID)
	assert.Equal(t, 2, emp.TotalCheckins)
	assert.Equal(t, 2.00, emp.TotalWorkingHours)
	assert.Equal(t, 2, emp.ClientsVisited)

	require.Len(t, emp.Checkins, 2)
	require.NotNil(t, emp.Checkins[0].Hours)
	assert.Equal(t, 2.00, *emp.Checkins[0].Hours)
	assert.Nil(t, emp.Checkins[1].Hours, "open session hours stay undefined")
	assert.Nil(t, emp.Checkins[1].CheckoutTime)

	assert.Equal(t, 1, summary.TeamSummary.TotalEmployees)
	assert.Equal(t, 2, summary.TeamSummary.TotalCheckins)
	assert.Equal(t, 2.00, summary.TeamSummary.TotalWorkingHours)
	assert.Equal(t, 2, summary.TeamSummary.TotalClientsVisited)
	assert.True(t, summary.HasActivity())
}

func TestBuildDailySummary_ZeroActivityEmployees(t *testing.T) {
	rows := []domain.AttendanceRow{
		noCheckinRow("e1", "Alice", "alice@example.com"),
		noCheckinRow("e2", "Bob", "bob@example.com"),
	}

	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, rows)

	require.Len(t, summary.EmployeeBreakdown, 2)
	for _, emp := range summary.EmployeeBreakdown {
		assert.Equal(t, 0, emp.TotalCheckins)
		assert.Equal(t, 0.00, emp.TotalWorkingHours)
		assert.Equal(t, 0, emp.ClientsVisited)
		assert.Empty(t, emp.Checkins)
		assert.NotNil(t, emp.Checkins, "checkins serializes as an empty list, not null")
	}

	assert.Equal(t, 2, summary.TeamSummary.TotalEmployees)
	assert.Equal(t, 0, summary.TeamSummary.TotalCheckins)
	assert.Equal(t, 0.00, summary.TeamSummary.TotalWorkingHours)
	assert.Equal(t, 0, summary.TeamSummary.TotalClientsVisited)
	assert.False(t, summary.HasActivity())
}

func TestBuildDailySummary_EmptyScope(t *testing.T) {
	filter := "e-unknown"
	summary := buildDailySummary(ReportParams{Date: "2024-03-01", EmployeeFilter: &filter}, nil)

	assert.Equal(t, 0, summary.TeamSummary.TotalEmployees)
	assert.Empty(t, summary.EmployeeBreakdown)
	assert.NotNil(t, summary.EmployeeBreakdown)
	assert.False(t, summary.HasActivity())
	require.NotNil(t, summary.EmployeeIDFilter)
	assert.Equal(t, "e-unknown", *summary.EmployeeIDFilter)
}

func TestBuildDailySummary_DistinctClientsPerEmployee(t *testing.T) {
	end1 := "2024-03-01T10:00:00Z"
	end2 := "2024-03-01T15:00:00Z"
	rows := []domain.AttendanceRow{
		checkinRow(t, "e1", "Alice", "alice@example.com", "chk-1", "c1", "Client One", "2024-03-01T09:00:00Z", &end1),
		checkinRow(t, "e1", "Alice", "alice@example.com", "chk-2", "c1", "Client One", "2024-03-01T14:00:00Z", &end2),
	}

	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, rows)

	require.Len(t, summary.EmployeeBreakdown, 1)
	assert.Equal(t, 2, summary.EmployeeBreakdown[0].TotalCheckins)
	assert.Equal(t, 1, summary.EmployeeBreakdown[0].ClientsVisited, "same client twice counts once")
}

func TestBuildDailySummary_TeamClientSumIsNotDeduplicated(t *testing.T) {
	end := "2024-03-01T10:00:00Z"
	rows := []domain.AttendanceRow{
		checkinRow(t, "e1", "Alice", "alice@example.com", "chk-1", "c1", "Client One", "2024-03-01T09:00:00Z", &end),
		checkinRow(t, "e2", "Bob", "bob@example.com", "chk-2", "c1", "Client One", "2024-03-01T09:00:00Z", &end),
	}

	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, rows)

	// Both employees visited the same client; the team total sums the
	// per-employee cardinalities instead of deduplicating across the team.
	assert.Equal(t, 2, summary.TeamSummary.TotalClientsVisited)
}

func TestBuildDailySummary_PreservesFirstSeenOrder(t *testing.T) {
	end := "2024-03-01T10:00:00Z"
	rows := []domain.AttendanceRow{
		checkinRow(t, "e2", "Anna", "anna@example.com", "chk-1", "c1", "Client One", "2024-03-01T09:00:00Z", &end),
		checkinRow(t, "e1", "Ben", "ben@example.com", "chk-2", "c2", "Client Two", "2024-03-01T09:30:00Z", &end),
		checkinRow(t, "e2", "Anna", "anna@example.com", "chk-3", "c2", "Client Two", "2024-03-01T11:00:00Z", nil),
	}

	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, rows)

	require.Len(t, summary.EmployeeBreakdown, 2)
	assert.Equal(t, "e2", summary.EmployeeBreakdown[0].EmployeeID)
	assert.Equal(t, "e1", summary.EmployeeBreakdown[1].EmployeeID)
	require.Len(t, summary.EmployeeBreakdown[0].Checkins, 2)
	assert.Equal(t, "chk-1", summary.EmployeeBreakdown[0].Checkins[0].CheckinID)
	assert.Equal(t, "chk-3", summary.EmployeeBreakdown[0].Checkins[1].CheckinID)
}

func TestBuildDailySummary_EchoesDateAndFilter(t *testing.T) {
	summary := buildDailySummary(ReportParams{Date: "2024-03-01"}, nil)

	assert.Equal(t, "2024-03-01", summary.Date)
	assert.Nil(t, summary.EmployeeIDFilter)
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"half rounds up", 3.005, 3.01},
		{"below half rounds down", 3.004, 3.00},
		{"exact", 2.00, 2.00},
		{"zero", 0, 0},
		{"third of an hour", 1.0 / 3.0, 0.33},
		{"two thirds", 2.0 / 3.0, 0.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundHours(tt.in), 1e-9)
		})
	}
}
