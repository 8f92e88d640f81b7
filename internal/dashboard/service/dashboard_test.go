package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack-backend/internal/dashboard/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/testutil"
)

func newDashboardService(t *testing.T, at time.Time) (*DashboardService, *testutil.MockDB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(mockDB.DB), logger.New("test", "test"))
	svc.now = func() time.Time { return at }
	return svc, mockDB
}

func TestManagerStats(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	svc, mockDB := newDashboardService(t, now)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM users WHERE manager_id").
		WithArgs("mgr-1").
		WillReturnRows(testutil.MockRows("count").AddRow(5))

	mockDB.ExpectQuery("date(ch.checkin_time)").
		WithArgs("mgr-1", "2024-03-01").
		WillReturnRows(testutil.MockRows("count").AddRow(7))

	mockDB.ExpectQuery("ch.checkout_time IS NULL").
		WithArgs("mgr-1").
		WillReturnRows(testutil.MockRows("count").AddRow(2))

	stats, err := svc.ManagerStats(context.Background(), "mgr-1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TeamMembers)
	assert.Equal(t, 7, stats.TodayCheckins)
	assert.Equal(t, 2, stats.ActiveSessions)

	mockDB.ExpectationsWereMet(t)
}

func TestEmployeeStats_WithLiveSession(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	svc, mockDB := newDashboardService(t, now)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM client_assignments").
		WithArgs("e1").
		WillReturnRows(testutil.MockRows("count").AddRow(3))

	mockDB.ExpectQuery("date(checkin_time)").
		WithArgs("e1", "2024-03-01").
		WillReturnRows(testutil.MockRows("count").AddRow(1))

	sessionRows := testutil.MockRows("checkin_id", "client_id", "client_name", "checkin_time").
		AddRow("chk-1", "c1", "Client One", now.Add(-90*time.Minute))

	mockDB.ExpectQuery("checkout_time IS NULL").
		WithArgs("e1").
		WillReturnRows(sessionRows)

	stats, err := svc.EmployeeStats(context.Background(), "e1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.AssignedClients)
	assert.Equal(t, 1, stats.TodayCheckins)
	require.NotNil(t, stats.ActiveSession)
	assert.Equal(t, 90, stats.ActiveSession.ElapsedMinutes, "open session gets a to-now estimate here, unlike reports")

	mockDB.ExpectationsWereMet(t)
}

func TestEmployeeStats_NoActiveSession(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	svc, mockDB := newDashboardService(t, now)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM client_assignments").
		WithArgs("e1").
		WillReturnRows(testutil.MockRows("count").AddRow(0))

	mockDB.ExpectQuery("date(checkin_time)").
		WithArgs("e1", "2024-03-01").
		WillReturnRows(testutil.MockRows("count").AddRow(0))

	mockDB.ExpectQuery("checkout_time IS NULL").
		WithArgs("e1").
		WillReturnError(sql.ErrNoRows)

	stats, err := svc.EmployeeStats(context.Background(), "e1")
	require.NoError(t, err)

	assert.Nil(t, stats.ActiveSession)

	mockDB.ExpectationsWereMet(t)
}
