package handlers

import (
	"net/http"

	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

// handleListUsers currently only answers the project-manager picker query.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if r.URL.Query().Get("role") != "PM" {
		api.Fail(w, http.StatusBadRequest, "unsupported_query", "only role=PM is supported", reqID)
		return
	}
	api.Success(w, h.store.ProjectManagers(), reqID)
}

func (h *Handler) handleListTrades(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.store.Trades(), middleware.GetRequestID(r.Context()))
}
