// Package mockstore owns the canonical in-memory record sets used when the
// portal runs without a real backend. Every read hands out a deep copy, so
// callers can never mutate store state through a returned value.
package mockstore

import (
	"fmt"
	"sync"
	"time"

	"fieldforce/internal/domain/workforce"
)

const (
	employeeIDPrefix = "EMP"
	projectIDPrefix  = "PRJ"
)

type Store struct {
	mu sync.Mutex

	now func() time.Time

	adminDashboard    workforce.AdminDashboard
	employees         []workforce.Employee
	projects          []workforce.Project
	projectDashboards map[string]workforce.ProjectDashboard
	timesheets        []workforce.TimesheetApproval
	projectManagers   []workforce.ProjectManager
	trades            []string
	defaultPMProject  string
	hrAdminUser       workforce.Identity
	pmUser            workforce.Identity

	employeeCounter int
	projectCounter  int
}

// New takes ownership of the dataset. Counters continue one past the seeded
// records so generated ids never collide with seed ids.
func New(data *workforce.Dataset, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:               now,
		adminDashboard:    data.AdminDashboard,
		employees:         data.Employees,
		projects:          data.Projects,
		projectDashboards: data.ProjectDashboards,
		timesheets:        data.Timesheets,
		projectManagers:   data.ProjectManagers,
		trades:            data.Trades,
		defaultPMProject:  data.DefaultPMProject,
		hrAdminUser:       data.HRAdminUser,
		pmUser:            data.PMUser,
		employeeCounter:   len(data.Employees) + 1,
		projectCounter:    len(data.Projects) + 1,
	}
}

func (s *Store) AdminDashboard() workforce.AdminDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAdminDashboard(s.adminDashboard)
}

func (s *Store) ListEmployees() []workforce.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workforce.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) GetEmployee(id string) (workforce.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return workforce.Employee{}, fmt.Errorf("employee %s: %w", id, workforce.ErrNotFound)
}

// CreateEmployee merges the supplied fields over new-employee defaults,
// assigns the next EMP id and appends the record.
func (s *Store) CreateEmployee(e workforce.Employee) workforce.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = fmt.Sprintf("%s-%03d", employeeIDPrefix, s.employeeCounter)
	s.employeeCounter++
	if e.Status == "" {
		e.Status = workforce.EmployeeStatusActive
	}
	if e.HireDate == "" {
		e.HireDate = s.now().Format("2006-01-02")
	}
	s.employees = append(s.employees, e)
	return e
}

// UpdateEmployee shallow-merges the patch onto the stored record. Patch
// fields win, unspecified fields are retained.
func (s *Store) UpdateEmployee(id string, patch workforce.EmployeePatch) (workforce.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Phone != nil {
			e.Phone = *patch.Phone
		}
		if patch.Role != nil {
			e.Role = *patch.Role
		}
		if patch.Trade != nil {
			e.Trade = *patch.Trade
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		if patch.HourlyRate != nil {
			e.HourlyRate = *patch.HourlyRate
		}
		if patch.AssignedProjectID != nil {
			e.AssignedProjectID = *patch.AssignedProjectID
		}
		if patch.AssignedProjectName != nil {
			e.AssignedProjectName = *patch.AssignedProjectName
		}
		if patch.HireDate != nil {
			e.HireDate = *patch.HireDate
		}
		return *e, nil
	}
	return workforce.Employee{}, fmt.Errorf("employee %s: %w", id, workforce.ErrNotFound)
}

func (s *Store) ListProjects() []workforce.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workforce.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

func (s *Store) GetProject(id string) (workforce.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), nil
		}
	}
	return workforce.Project{}, fmt.Errorf("project %s: %w", id, workforce.ErrNotFound)
}

func (s *Store) ProjectsForManager(managerID string) []workforce.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workforce.Project, 0)
	for _, p := range s.projects {
		if p.ManagerID == managerID {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

// CreateProject fills new-project defaults for anything the caller left
// unset, assigns the next PRJ id and appends the record.
func (s *Store) CreateProject(p workforce.Project) workforce.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = fmt.Sprintf("%s-%03d", projectIDPrefix, s.projectCounter)
	s.projectCounter++
	if p.Status == "" {
		p.Status = workforce.ProjectStatusPlanning
	}
	if p.RadiusMeters == 0 {
		p.RadiusMeters = 150
	}
	if p.WorkerIDs == nil {
		p.WorkerIDs = []string{}
	}
	if p.WorkerNames == nil {
		p.WorkerNames = []string{}
	}
	s.projects = append(s.projects, cloneProject(p))
	return p
}

func (s *Store) UpdateProject(id string, patch workforce.ProjectPatch) (workforce.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Code != nil {
			p.Code = *patch.Code
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.BudgetHours != nil {
			p.BudgetHours = *patch.BudgetHours
		}
		if patch.BudgetCost != nil {
			p.BudgetCost = *patch.BudgetCost
		}
		if patch.Latitude != nil {
			p.Latitude = *patch.Latitude
		}
		if patch.Longitude != nil {
			p.Longitude = *patch.Longitude
		}
		if patch.RadiusMeters != nil {
			p.RadiusMeters = *patch.RadiusMeters
		}
		if patch.ManagerID != nil {
			p.ManagerID = *patch.ManagerID
		}
		if patch.ManagerName != nil {
			p.ManagerName = *patch.ManagerName
		}
		if patch.WorkerIDs != nil {
			p.WorkerIDs = append([]string(nil), (*patch.WorkerIDs)...)
		}
		if patch.WorkerNames != nil {
			p.WorkerNames = append([]string(nil), (*patch.WorkerNames)...)
		}
		if patch.Address != nil {
			p.Address = *patch.Address
		}
		return cloneProject(*p), nil
	}
	return workforce.Project{}, fmt.Errorf("project %s: %w", id, workforce.ErrNotFound)
}

func (s *Store) ProjectDashboard(projectID string) (workforce.ProjectDashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.projectDashboards[projectID]
	if !ok {
		return workforce.ProjectDashboard{}, fmt.Errorf("dashboard for %s: %w", projectID, workforce.ErrNotFound)
	}
	return d, nil
}

func (s *Store) ListTimesheets() []workforce.TimesheetApproval {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workforce.TimesheetApproval, len(s.timesheets))
	copy(out, s.timesheets)
	return out
}

// UpdateTimesheetStatus records an approval decision. The transition out of
// PENDING happens at most once; processedAt is stamped at that moment.
func (s *Store) UpdateTimesheetStatus(id, status string) (workforce.TimesheetApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.timesheets {
		if s.timesheets[i].ID != id {
			continue
		}
		ts := &s.timesheets[i]
		if ts.Status != workforce.TimesheetStatusPending {
			return workforce.TimesheetApproval{}, fmt.Errorf("timesheet %s: %w", id, workforce.ErrAlreadyProcessed)
		}
		ts.Status = status
		ts.ProcessedAt = s.now().UTC().Format(time.RFC3339)
		return *ts, nil
	}
	return workforce.TimesheetApproval{}, fmt.Errorf("timesheet %s: %w", id, workforce.ErrNotFound)
}

func (s *Store) ProjectManagers() []workforce.ProjectManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workforce.ProjectManager, len(s.projectManagers))
	copy(out, s.projectManagers)
	return out
}

func (s *Store) ManagerName(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.projectManagers {
		if m.ID == id {
			return m.Name, nil
		}
	}
	return "", fmt.Errorf("project manager %s: %w", id, workforce.ErrNotFound)
}

func (s *Store) Trades() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.trades...)
}

func (s *Store) DefaultPMProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultPMProject
}

// AuthPayload returns the canned login result for a dev role.
func (s *Store) AuthPayload(role workforce.Role) (workforce.AuthPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch role {
	case workforce.RoleHRAdmin:
		return workforce.AuthPayload{AccessToken: "mock-token-admin", User: s.hrAdminUser}, nil
	case workforce.RolePM:
		return workforce.AuthPayload{AccessToken: "mock-token-pm", User: s.pmUser}, nil
	default:
		return workforce.AuthPayload{}, fmt.Errorf("dev auth for role %s: %w", role, workforce.ErrNotFound)
	}
}

// DevUser looks up a seeded identity by email for the devserver login path.
func (s *Store) DevUser(email string) (workforce.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range []workforce.Identity{s.hrAdminUser, s.pmUser} {
		if u.Email == email {
			return u, nil
		}
	}
	return workforce.Identity{}, fmt.Errorf("user %s: %w", email, workforce.ErrNotFound)
}

func cloneProject(p workforce.Project) workforce.Project {
	p.WorkerIDs = append([]string(nil), p.WorkerIDs...)
	p.WorkerNames = append([]string(nil), p.WorkerNames...)
	return p
}

func cloneAdminDashboard(d workforce.AdminDashboard) workforce.AdminDashboard {
	d.Summary = append([]workforce.SummaryTile(nil), d.Summary...)
	d.Alerts = append([]workforce.Alert(nil), d.Alerts...)
	d.RecentActivity = append([]workforce.ActivityItem(nil), d.RecentActivity...)
	return d
}
