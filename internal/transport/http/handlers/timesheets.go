package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/reports"
	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

func (h *Handler) handlePendingTimesheets(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	pending := make([]workforce.TimesheetApproval, 0)
	for _, ts := range h.store.ListTimesheets() {
		if ts.Status == workforce.TimesheetStatusPending {
			pending = append(pending, ts)
		}
	}
	api.Success(w, pending, reqID)
}

func (h *Handler) handleApproveTimesheet(w http.ResponseWriter, r *http.Request) {
	h.processTimesheet(w, r, workforce.TimesheetStatusApproved)
}

func (h *Handler) handleRejectTimesheet(w http.ResponseWriter, r *http.Request) {
	h.processTimesheet(w, r, workforce.TimesheetStatusRejected)
}

func (h *Handler) processTimesheet(w http.ResponseWriter, r *http.Request, status string) {
	reqID := middleware.GetRequestID(r.Context())
	if !requireRole(w, r, workforce.RolePM) {
		return
	}
	updated, err := h.store.UpdateTimesheetStatus(chi.URLParam(r, "timesheetID"), status)
	if err != nil {
		api.FromError(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}

// handleTimesheetRegister streams the approval register as a PDF, the one
// binary response in the protocol.
func (h *Handler) handleTimesheetRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="timesheet-register.pdf"`)
	if err := reports.WriteTimesheetRegister(w, h.store.ListTimesheets()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_error", "failed to render report", reqID)
	}
}
