package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/testutil"
)

var attendanceColumns = []string{
	"employee_id", "employee_name", "employee_email",
	"checkin_id", "checkin_time", "checkout_time",
	"distance_from_client", "notes", "client_id", "client_name",
}

func TestFetchDay_ScopedToManager(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	checkin := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	checkout := checkin.Add(2 * time.Hour)

	rows := testutil.MockRows(attendanceColumns...).
		AddRow("e1", "Alice", "alice@example.com", "chk-1", checkin, checkout, 12.5, "on time", "c1", "Client One").
		AddRow("e2", "Bob", "bob@example.com", nil, nil, nil, nil, nil, nil, nil)

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-01", "mgr-1").
		WillReturnRows(rows)

	repo := repository.NewAttendanceRepository(mockDB.DB)
	result, err := repo.FetchDay(context.Background(), "mgr-1", "2024-03-01", nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "e1", result[0].EmployeeID)
	assert.True(t, result[0].HasCheckin())
	require.NotNil(t, result[0].CheckoutTime)
	assert.Equal(t, checkout, *result[0].CheckoutTime)

	assert.Equal(t, "e2", result[1].EmployeeID)
	assert.False(t, result[1].HasCheckin(), "left join row without checkin id")
	assert.Nil(t, result[1].ClientID)

	mockDB.ExpectationsWereMet(t)
}

func TestFetchDay_WithEmployeeFilter(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	rows := testutil.MockRows(attendanceColumns...)

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-01", "mgr-1", "e-outside-scope").
		WillReturnRows(rows)

	repo := repository.NewAttendanceRepository(mockDB.DB)
	filter := "e-outside-scope"
	result, err := repo.FetchDay(context.Background(), "mgr-1", "2024-03-01", &filter)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result, "empty scope returns an empty slice, not nil")

	mockDB.ExpectationsWereMet(t)
}
