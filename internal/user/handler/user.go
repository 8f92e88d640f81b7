package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldtrack-backend/internal/user/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// UserHandler handles employee management endpoints
type UserHandler struct {
	service *service.UserService
	logger  *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  log,
	}
}

// Create creates a new employee in the manager's team
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateEmployeeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	managerID := httputil.GetUserID(r.Context())
	user, err := h.service.CreateEmployee(r.Context(), managerID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, user)
}

// List lists the manager's employees
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	managerID := httputil.GetUserID(r.Context())
	users, err := h.service.ListTeam(r.Context(), managerID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, users)
}

// Get gets one of the manager's employees by ID
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	managerID := httputil.GetUserID(r.Context())
	employeeID := chi.URLParam(r, "id")

	user, err := h.service.GetTeamMember(r.Context(), managerID, employeeID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, user)
}

// Update updates an employee's name and email
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateEmployeeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	managerID := httputil.GetUserID(r.Context())
	employeeID := chi.URLParam(r, "id")

	user, err := h.service.UpdateEmployee(r.Context(), managerID, employeeID, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, user)
}

// Delete removes an employee
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	managerID := httputil.GetUserID(r.Context())
	employeeID := chi.URLParam(r, "id")

	if err := h.service.DeleteEmployee(r.Context(), managerID, employeeID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
