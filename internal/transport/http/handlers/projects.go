package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if managerID := r.URL.Query().Get("managerId"); managerID != "" {
		api.Success(w, h.store.ProjectsForManager(managerID), reqID)
		return
	}
	api.Success(w, h.store.ListProjects(), reqID)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RoleHRAdmin) {
		return
	}

	var payload workforce.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if payload.RadiusMeters < 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_geofence", "radiusMeters must not be negative", reqID)
		return
	}
	created := h.store.CreateProject(payload)
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RoleHRAdmin) {
		return
	}

	var patch workforce.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if patch.RadiusMeters != nil && *patch.RadiusMeters < 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_geofence", "radiusMeters must not be negative", reqID)
		return
	}
	updated, err := h.store.UpdateProject(chi.URLParam(r, "projectID"), patch)
	if err != nil {
		api.FromError(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}
