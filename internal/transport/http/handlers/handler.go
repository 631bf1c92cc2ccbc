// Package handlers binds the backend protocol onto the mock store for the
// devserver binary. The production backend implements the same contract.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/mockstore"
	"fieldforce/internal/transport/http/api"
	"fieldforce/internal/transport/http/middleware"
)

type Handler struct {
	store  *mockstore.Store
	secret string
	// email -> bcrypt password hash for the seeded dev users
	credentials map[string]string
}

func New(store *mockstore.Store, secret string, credentials map[string]string) *Handler {
	return &Handler{store: store, secret: secret, credentials: credentials}
}

func (h *Handler) RegisterRoutes(r chi.Router, loginLimiter func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.With(loginLimiter).Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Get("/dashboard/admin", h.handleAdminDashboard)
			r.Get("/dashboard/pm/{projectID}", h.handleProjectDashboard)

			r.Get("/employees", h.handleListEmployees)
			r.Post("/employees", h.handleCreateEmployee)
			r.Put("/employees/{employeeID}", h.handleUpdateEmployee)

			r.Get("/projects", h.handleListProjects)
			r.Post("/projects", h.handleCreateProject)
			r.Put("/projects/{projectID}", h.handleUpdateProject)

			r.Get("/timesheet/pending-approvals", h.handlePendingTimesheets)
			r.Post("/timesheet/{timesheetID}/approve", h.handleApproveTimesheet)
			r.Post("/timesheet/{timesheetID}/reject", h.handleRejectTimesheet)

			r.Get("/users", h.handleListUsers)
			r.Get("/trades", h.handleListTrades)
			r.Get("/reports/timesheets", h.handleTimesheetRegister)
		})
	})
}

// requireUser rejects requests that did not present a valid bearer token.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireRole(w http.ResponseWriter, r *http.Request, role workforce.Role) bool {
	user, ok := middleware.GetUser(r.Context())
	if !ok || user.Role != role {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient role", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}
