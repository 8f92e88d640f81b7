package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/handler"
	"github.com/fieldtrack/fieldtrack-backend/internal/report/repository"
	"github.com/fieldtrack/fieldtrack-backend/internal/report/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/testutil"
)

type summaryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Date             string  `json:"date"`
		EmployeeIDFilter *string `json:"employee_id_filter"`
		TeamSummary      struct {
			TotalEmployees      int     `json:"total_employees"`
			TotalCheckins       int     `json:"total_checkins"`
			TotalWorkingHours   float64 `json:"total_working_hours"`
			TotalClientsVisited int     `json:"total_clients_visited"`
		} `json:"team_summary"`
		EmployeeBreakdown []struct {
			EmployeeID        string  `json:"employee_id"`
			TotalCheckins     int     `json:"total_checkins"`
			TotalWorkingHours float64 `json:"total_working_hours"`
			ClientsVisited    int     `json:"clients_visited"`
		} `json:"employee_breakdown"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newReportHandler(t *testing.T) (*handler.ReportHandler, *testutil.MockDB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	log := logger.New("test", "test")

	repo := repository.NewAttendanceRepository(mockDB.DB)
	svc := service.NewReportService(repo, log)
	return handler.NewReportHandler(svc, log), mockDB
}

func doDailySummary(t *testing.T, h *handler.ReportHandler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily-summary"+query, nil)
	req = req.WithContext(httputil.WithUserContext(req.Context(), "mgr-1", "manager@example.com", "manager"))

	rec := httptest.NewRecorder()
	h.DailySummary(rec, req)
	return rec
}

func TestDailySummary_Success(t *testing.T) {
	h, mockDB := newReportHandler(t)
	defer mockDB.Close()

	checkin := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	checkout := checkin.Add(2 * time.Hour)

	rows := testutil.MockRows(
		"employee_id", "employee_name", "employee_email",
		"checkin_id", "checkin_time", "checkout_time",
		"distance_from_client", "notes", "client_id", "client_name",
	).AddRow("e1", "Alice", "alice@example.com", "chk-1", checkin, checkout, nil, nil, "c1", "Client One")

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-01", "mgr-1").
		WillReturnRows(rows)

	rec := doDailySummary(t, h, "?date=2024-03-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "2024-03-01", resp.Data.Date)
	assert.Nil(t, resp.Data.EmployeeIDFilter)
	assert.Equal(t, 1, resp.Data.TeamSummary.TotalEmployees)
	assert.Equal(t, 1, resp.Data.TeamSummary.TotalCheckins)
	assert.Equal(t, 2.00, resp.Data.TeamSummary.TotalWorkingHours)
	require.Len(t, resp.Data.EmployeeBreakdown, 1)
	assert.Equal(t, 2.00, resp.Data.EmployeeBreakdown[0].TotalWorkingHours)

	mockDB.ExpectationsWereMet(t)
}

func TestDailySummary_NoDataNotice(t *testing.T) {
	h, mockDB := newReportHandler(t)
	defer mockDB.Close()

	rows := testutil.MockRows(
		"employee_id", "employee_name", "employee_email",
		"checkin_id", "checkin_time", "checkout_time",
		"distance_from_client", "notes", "client_id", "client_name",
	).AddRow("e1", "Alice", "alice@example.com", nil, nil, nil, nil, nil, nil, nil)

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-05", "mgr-1").
		WillReturnRows(rows)

	rec := doDailySummary(t, h, "?date=2024-03-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "No check-in data found for the specified date", resp.Message)
	assert.Equal(t, 1, resp.Data.TeamSummary.TotalEmployees)
	require.Len(t, resp.Data.EmployeeBreakdown, 1)
	assert.Equal(t, 0, resp.Data.EmployeeBreakdown[0].TotalCheckins)
}

func TestDailySummary_OutOfScopeFilterIsNotAnError(t *testing.T) {
	h, mockDB := newReportHandler(t)
	defer mockDB.Close()

	rows := testutil.MockRows(
		"employee_id", "employee_name", "employee_email",
		"checkin_id", "checkin_time", "checkout_time",
		"distance_from_client", "notes", "client_id", "client_name",
	)

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-01", "mgr-1", "someone-elses-employee").
		WillReturnRows(rows)

	rec := doDailySummary(t, h, "?date=2024-03-01&employee_id=someone-elses-employee")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Data.TeamSummary.TotalEmployees)
	assert.Empty(t, resp.Data.EmployeeBreakdown)
	require.NotNil(t, resp.Data.EmployeeIDFilter)
	assert.Equal(t, "someone-elses-employee", *resp.Data.EmployeeIDFilter)
}

func TestDailySummary_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{"missing date", "", "MISSING_PARAMETER"},
		{"malformed date", "?date=2024-1-01", "MALFORMED_DATE"},
		{"invalid date", "?date=2024-13-01", "INVALID_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockDB := newReportHandler(t)
			defer mockDB.Close()

			rec := doDailySummary(t, h, tt.query)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp summaryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			// Validation short-circuits before any data access.
			mockDB.ExpectationsWereMet(t)
		})
	}
}

func TestDailySummary_FetchFailureIsOpaque(t *testing.T) {
	h, mockDB := newReportHandler(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM users u").
		WithArgs("2024-03-01", "mgr-1").
		WillReturnError(assert.AnError)

	rec := doDailySummary(t, h, "?date=2024-03-01")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AGGREGATION_FAILURE", resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error(), "internal error text never reaches the client")
}
