package handler

import (
	"net/http"
	"strconv"

	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// CheckinHandler handles check-in endpoints
type CheckinHandler struct {
	service *service.CheckinService
	logger  *logger.Logger
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(svc *service.CheckinService, log *logger.Logger) *CheckinHandler {
	return &CheckinHandler{
		service: svc,
		logger:  log,
	}
}

// CheckIn handles POST /checkins/check-in
func (h *CheckinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req service.CheckInRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	employeeID := httputil.GetUserID(r.Context())
	checkin, err := h.service.CheckIn(r.Context(), employeeID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, checkin)
}

// CheckOut handles POST /checkins/check-out
func (h *CheckinHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req service.CheckOutRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	employeeID := httputil.GetUserID(r.Context())
	checkin, err := h.service.CheckOut(r.Context(), employeeID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, checkin)
}

// MyHistory handles GET /checkins/my-history
func (h *CheckinHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	employeeID := httputil.GetUserID(r.Context())
	history, err := h.service.History(r.Context(), employeeID, limit)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, history)
}
