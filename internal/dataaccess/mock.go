package dataaccess

import (
	"context"
	"time"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/mockstore"
)

// mockBackend serves every operation from the in-memory store, after an
// artificial minimum latency so loading-state logic upstream is exercised
// the same way a network round-trip would.
type mockBackend struct {
	store   *mockstore.Store
	latency time.Duration
}

func newMockBackend(store *mockstore.Store, latency time.Duration) *mockBackend {
	return &mockBackend{store: store, latency: latency}
}

func (b *mockBackend) wait(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (b *mockBackend) Login(ctx context.Context, email, password string) (workforce.AuthPayload, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.AuthPayload{}, err
	}
	// The simulated backend authenticates by seeded identity alone; real
	// credential checks belong to the real backend.
	user, err := b.store.DevUser(email)
	if err != nil {
		return workforce.AuthPayload{}, err
	}
	return b.store.AuthPayload(user.Role)
}

func (b *mockBackend) AdminDashboard(ctx context.Context) (workforce.AdminDashboard, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.AdminDashboard{}, err
	}
	return b.store.AdminDashboard(), nil
}

func (b *mockBackend) ListEmployees(ctx context.Context) ([]workforce.Employee, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.ListEmployees(), nil
}

func (b *mockBackend) CreateEmployee(ctx context.Context, e workforce.Employee) (workforce.Employee, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.Employee{}, err
	}
	return b.store.CreateEmployee(e), nil
}

func (b *mockBackend) UpdateEmployee(ctx context.Context, id string, patch workforce.EmployeePatch) (workforce.Employee, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.Employee{}, err
	}
	return b.store.UpdateEmployee(id, patch)
}

func (b *mockBackend) ListProjects(ctx context.Context) ([]workforce.Project, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.ListProjects(), nil
}

func (b *mockBackend) CreateProject(ctx context.Context, p workforce.Project) (workforce.Project, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.Project{}, err
	}
	return b.store.CreateProject(p), nil
}

func (b *mockBackend) UpdateProject(ctx context.Context, id string, patch workforce.ProjectPatch) (workforce.Project, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.Project{}, err
	}
	return b.store.UpdateProject(id, patch)
}

func (b *mockBackend) ProjectDashboard(ctx context.Context, projectID string) (workforce.ProjectDashboard, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.ProjectDashboard{}, err
	}
	return b.store.ProjectDashboard(projectID)
}

func (b *mockBackend) ListTimesheetApprovals(ctx context.Context) ([]workforce.TimesheetApproval, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.ListTimesheets(), nil
}

func (b *mockBackend) SetTimesheetStatus(ctx context.Context, id, status string) (workforce.TimesheetApproval, error) {
	if err := b.wait(ctx); err != nil {
		return workforce.TimesheetApproval{}, err
	}
	return b.store.UpdateTimesheetStatus(id, status)
}

func (b *mockBackend) ListProjectManagers(ctx context.Context) ([]workforce.ProjectManager, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.ProjectManagers(), nil
}

func (b *mockBackend) ListTrades(ctx context.Context) ([]string, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.Trades(), nil
}

func (b *mockBackend) ListProjectsForManager(ctx context.Context, managerID string) ([]workforce.Project, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.store.ProjectsForManager(managerID), nil
}
