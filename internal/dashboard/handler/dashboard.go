package handler

import (
	"net/http"

	"github.com/fieldtrack/fieldtrack-backend/internal/dashboard/service"
	userdomain "github.com/fieldtrack/fieldtrack-backend/internal/user/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	service *service.DashboardService
	logger  *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		logger:  log,
	}
}

// Stats handles GET /dashboard/stats. The view depends on the caller's
// role: managers see their team, employees see their own day.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r.Context())

	if httputil.GetUserRole(r.Context()) == userdomain.RoleManager {
		stats, err := h.service.ManagerStats(r.Context(), userID)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, stats)
		return
	}

	stats, err := h.service.EmployeeStats(r.Context(), userID)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, stats)
}
