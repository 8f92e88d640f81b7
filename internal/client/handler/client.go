package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldtrack-backend/internal/client/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// ClientHandler handles client site endpoints
type ClientHandler struct {
	service *service.ClientService
	logger  *logger.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(svc *service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service: svc,
		logger:  log,
	}
}

// Create registers a new client site
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateClientRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	createdBy := httputil.GetUserID(r.Context())
	client, err := h.service.Create(r.Context(), createdBy, &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, client)
}

// List lists all client sites
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, clients)
}

// Get gets a client site by ID
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, client)
}

// Update updates a client site
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateClientRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	client, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, client)
}

// Delete removes a client site
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}

// Assign links an employee to a client site
func (h *ClientHandler) Assign(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.service.Assign(r.Context(), clientID, employeeID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]string{
		"client_id":   clientID,
		"employee_id": employeeID,
	})
}

// Unassign removes an employee's assignment to a client site
func (h *ClientHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.service.Unassign(r.Context(), clientID, employeeID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.NoContent(w)
}
