// Package dataaccess exposes one uniform set of data operations to the rest
// of the portal and routes each call to either the in-memory mock store or
// the remote backend. The mode is fixed once at construction; results are
// structurally identical either way.
package dataaccess

import (
	"context"
	"fmt"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/mockstore"
	"fieldforce/internal/platform/config"
	"fieldforce/internal/session"
)

// backend is the raw operation set each mode implements. The outer Service
// adds write-path denormalization on top, so neither backend has to keep
// cached display names in sync.
type backend interface {
	Login(ctx context.Context, email, password string) (workforce.AuthPayload, error)
	AdminDashboard(ctx context.Context) (workforce.AdminDashboard, error)
	ListEmployees(ctx context.Context) ([]workforce.Employee, error)
	CreateEmployee(ctx context.Context, e workforce.Employee) (workforce.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch workforce.EmployeePatch) (workforce.Employee, error)
	ListProjects(ctx context.Context) ([]workforce.Project, error)
	CreateProject(ctx context.Context, p workforce.Project) (workforce.Project, error)
	UpdateProject(ctx context.Context, id string, patch workforce.ProjectPatch) (workforce.Project, error)
	ProjectDashboard(ctx context.Context, projectID string) (workforce.ProjectDashboard, error)
	ListTimesheetApprovals(ctx context.Context) ([]workforce.TimesheetApproval, error)
	SetTimesheetStatus(ctx context.Context, id, status string) (workforce.TimesheetApproval, error)
	ListProjectManagers(ctx context.Context) ([]workforce.ProjectManager, error)
	ListTrades(ctx context.Context) ([]string, error)
	ListProjectsForManager(ctx context.Context, managerID string) ([]workforce.Project, error)
}

type Service struct {
	backend backend
	mock    *mockBackend // nil in real mode
}

// New builds the data access layer for the mode cfg selects. The session
// store supplies the bearer token for real-mode calls; the mock store is
// only consulted in mock mode.
func New(cfg config.Config, sessions *session.Store, store *mockstore.Store) (*Service, error) {
	if cfg.UseMock {
		if store == nil {
			return nil, fmt.Errorf("data access: %w: mock mode without a mock store", workforce.ErrConfiguration)
		}
		mock := newMockBackend(store, cfg.MockLatency)
		return &Service{backend: mock, mock: mock}, nil
	}
	remote, err := newRemoteBackend(cfg.APIBaseURL, cfg.RequestTimeout, sessions)
	if err != nil {
		return nil, err
	}
	return &Service{backend: remote}, nil
}

func (s *Service) MockMode() bool {
	return s.mock != nil
}

func (s *Service) Login(ctx context.Context, email, password string) (workforce.AuthPayload, error) {
	return s.backend.Login(ctx, email, password)
}

// DevAuthPayload returns a canned session for the given role. It exists so
// development builds can enter a role with one click; asking for it outside
// mock mode is a configuration error.
func (s *Service) DevAuthPayload(role workforce.Role) (workforce.AuthPayload, error) {
	if s.mock == nil {
		return workforce.AuthPayload{}, fmt.Errorf("dev auth payload: %w: only available in mock mode", workforce.ErrConfiguration)
	}
	return s.mock.store.AuthPayload(role)
}

func (s *Service) AdminDashboard(ctx context.Context) (workforce.AdminDashboard, error) {
	return s.backend.AdminDashboard(ctx)
}

func (s *Service) ListEmployees(ctx context.Context) ([]workforce.Employee, error) {
	return s.backend.ListEmployees(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, e workforce.Employee) (workforce.Employee, error) {
	name, err := s.projectName(ctx, e.AssignedProjectID)
	if err != nil {
		return workforce.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	e.AssignedProjectName = name
	return s.backend.CreateEmployee(ctx, e)
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, patch workforce.EmployeePatch) (workforce.Employee, error) {
	if patch.AssignedProjectID != nil {
		name, err := s.projectName(ctx, *patch.AssignedProjectID)
		if err != nil {
			return workforce.Employee{}, fmt.Errorf("update employee %s: %w", id, err)
		}
		patch.AssignedProjectName = &name
	}
	return s.backend.UpdateEmployee(ctx, id, patch)
}

// SetEmployeeStatus is a convenience wrapper over UpdateEmployee used by
// the activate/deactivate actions.
func (s *Service) SetEmployeeStatus(ctx context.Context, id, status string) (workforce.Employee, error) {
	return s.backend.UpdateEmployee(ctx, id, workforce.EmployeePatch{Status: &status})
}

func (s *Service) ListProjects(ctx context.Context) ([]workforce.Project, error) {
	return s.backend.ListProjects(ctx)
}

func (s *Service) CreateProject(ctx context.Context, p workforce.Project) (workforce.Project, error) {
	if p.ManagerID != "" {
		name, err := s.managerName(ctx, p.ManagerID)
		if err != nil {
			return workforce.Project{}, fmt.Errorf("create project: %w", err)
		}
		p.ManagerName = name
	}
	if len(p.WorkerIDs) > 0 {
		names, err := s.workerNames(ctx, p.WorkerIDs)
		if err != nil {
			return workforce.Project{}, fmt.Errorf("create project: %w", err)
		}
		p.WorkerNames = names
	}
	return s.backend.CreateProject(ctx, p)
}

func (s *Service) UpdateProject(ctx context.Context, id string, patch workforce.ProjectPatch) (workforce.Project, error) {
	if patch.ManagerID != nil {
		name, err := s.managerName(ctx, *patch.ManagerID)
		if err != nil {
			return workforce.Project{}, fmt.Errorf("update project %s: %w", id, err)
		}
		patch.ManagerName = &name
	}
	if patch.WorkerIDs != nil {
		names, err := s.workerNames(ctx, *patch.WorkerIDs)
		if err != nil {
			return workforce.Project{}, fmt.Errorf("update project %s: %w", id, err)
		}
		patch.WorkerNames = &names
	}
	return s.backend.UpdateProject(ctx, id, patch)
}

func (s *Service) ProjectDashboard(ctx context.Context, projectID string) (workforce.ProjectDashboard, error) {
	return s.backend.ProjectDashboard(ctx, projectID)
}

func (s *Service) ListTimesheetApprovals(ctx context.Context) ([]workforce.TimesheetApproval, error) {
	return s.backend.ListTimesheetApprovals(ctx)
}

func (s *Service) ApproveTimesheet(ctx context.Context, id string) (workforce.TimesheetApproval, error) {
	return s.backend.SetTimesheetStatus(ctx, id, workforce.TimesheetStatusApproved)
}

func (s *Service) RejectTimesheet(ctx context.Context, id string) (workforce.TimesheetApproval, error) {
	return s.backend.SetTimesheetStatus(ctx, id, workforce.TimesheetStatusRejected)
}

func (s *Service) ListProjectManagers(ctx context.Context) ([]workforce.ProjectManager, error) {
	return s.backend.ListProjectManagers(ctx)
}

func (s *Service) ListTrades(ctx context.Context) ([]string, error) {
	return s.backend.ListTrades(ctx)
}

func (s *Service) ListProjectsForManager(ctx context.Context, managerID string) ([]workforce.Project, error) {
	return s.backend.ListProjectsForManager(ctx, managerID)
}

// DefaultPMProjectID returns the seeded landing project in mock mode and ""
// in real mode, where the resolver discovers it from the manager's project
// list instead.
func (s *Service) DefaultPMProjectID() string {
	if s.mock == nil {
		return ""
	}
	return s.mock.store.DefaultPMProjectID()
}

// projectName resolves the display name cached on employee records. An
// empty id clears the cached name.
func (s *Service) projectName(ctx context.Context, projectID string) (string, error) {
	if projectID == "" {
		return "", nil
	}
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("project %s: %w", projectID, workforce.ErrNotFound)
}

func (s *Service) managerName(ctx context.Context, managerID string) (string, error) {
	managers, err := s.backend.ListProjectManagers(ctx)
	if err != nil {
		return "", err
	}
	for _, m := range managers {
		if m.ID == managerID {
			return m.Name, nil
		}
	}
	return "", fmt.Errorf("project manager %s: %w", managerID, workforce.ErrNotFound)
}

func (s *Service) workerNames(ctx context.Context, workerIDs []string) ([]string, error) {
	employees, err := s.backend.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(employees))
	for _, e := range employees {
		byID[e.ID] = e.Name
	}
	names := make([]string, 0, len(workerIDs))
	for _, id := range workerIDs {
		name, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("worker %s: %w", id, workforce.ErrNotFound)
		}
		names = append(names, name)
	}
	return names, nil
}
