package handler

import (
	"net/http"

	"github.com/fieldtrack/fieldtrack-backend/internal/report/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// noDataNotice is attached when every employee in scope has zero check-ins
// for the requested date. That case is a success, not an error.
const noDataNotice = "No check-in data found for the specified date"

// ReportHandler handles report endpoints
type ReportHandler struct {
	service *service.ReportService
	logger  *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: svc,
		logger:  log,
	}
}

// DailySummary handles GET /reports/daily-summary. The authenticated manager
// defines the scope; employee_id narrows it further. An out-of-scope filter
// yields a success with an empty breakdown, never an authorization error.
func (h *ReportHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	managerID := httputil.GetUserID(r.Context())
	date := r.URL.Query().Get("date")
	employeeID := r.URL.Query().Get("employee_id")

	summary, err := h.service.DailySummary(r.Context(), managerID, date, employeeID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	if !summary.HasActivity() {
		httputil.JSONWithMessage(w, http.StatusOK, noDataNotice, summary)
		return
	}

	httputil.JSON(w, http.StatusOK, summary)
}
