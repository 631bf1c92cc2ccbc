package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.store.ListEmployees(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RoleHRAdmin) {
		return
	}

	var payload workforce.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	created := h.store.CreateEmployee(payload)
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RoleHRAdmin) {
		return
	}

	var patch workforce.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	updated, err := h.store.UpdateEmployee(chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		api.FromError(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}
