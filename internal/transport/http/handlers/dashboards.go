package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

func (h *Handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RoleHRAdmin) {
		return
	}
	api.Success(w, h.store.AdminDashboard(), reqID)
}

func (h *Handler) handleProjectDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	dashboard, err := h.store.ProjectDashboard(chi.URLParam(r, "projectID"))
	if err != nil {
		api.FromError(w, err, reqID)
		return
	}
	api.Success(w, dashboard, reqID)
}
