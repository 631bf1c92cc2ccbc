package dataaccess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/session"
)

// remoteBackend talks to the real backend over HTTP. Every call attaches
// the current session token as a bearer credential when one is present; a
// missing token never blocks the call, the server owns that enforcement.
type remoteBackend struct {
	baseURL  string
	client   *http.Client
	sessions *session.Store
}

func newRemoteBackend(baseURL string, timeout time.Duration, sessions *session.Store) (*remoteBackend, error) {
	trimmed := strings.TrimRight(baseURL, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("remote backend: %w: empty base URL", workforce.ErrConfiguration)
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("remote backend: %w: base URL: %v", workforce.ErrConfiguration, err)
	}
	return &remoteBackend{
		baseURL:  trimmed,
		client:   &http.Client{Timeout: timeout},
		sessions: sessions,
	}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (b *remoteBackend) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.sessions != nil {
		if sess, ok := b.sessions.Load(); ok {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, workforce.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, workforce.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, workforce.ErrUnauthorized)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: %w: status %d", method, path, workforce.ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: %w: decode response: %v", method, path, workforce.ErrUnavailable, err)
	}
	if !env.Success {
		msg := "request rejected"
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return fmt.Errorf("%s %s: %s: %w", method, path, msg, workforce.ErrUnavailable)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: %w: decode data: %v", method, path, workforce.ErrUnavailable, err)
		}
	}
	return nil
}

func (b *remoteBackend) Login(ctx context.Context, email, password string) (workforce.AuthPayload, error) {
	var out workforce.AuthPayload
	body := map[string]string{"email": email, "password": password}
	if err := b.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return workforce.AuthPayload{}, err
	}
	return out, nil
}

func (b *remoteBackend) AdminDashboard(ctx context.Context) (workforce.AdminDashboard, error) {
	var out workforce.AdminDashboard
	if err := b.do(ctx, http.MethodGet, "/api/dashboard/admin", nil, &out); err != nil {
		return workforce.AdminDashboard{}, err
	}
	return out, nil
}

func (b *remoteBackend) ListEmployees(ctx context.Context) ([]workforce.Employee, error) {
	var out []workforce.Employee
	if err := b.do(ctx, http.MethodGet, "/api/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *remoteBackend) CreateEmployee(ctx context.Context, e workforce.Employee) (workforce.Employee, error) {
	var out workforce.Employee
	if err := b.do(ctx, http.MethodPost, "/api/employees", e, &out); err != nil {
		return workforce.Employee{}, err
	}
	return out, nil
}

func (b *remoteBackend) UpdateEmployee(ctx context.Context, id string, patch workforce.EmployeePatch) (workforce.Employee, error) {
	var out workforce.Employee
	if err := b.do(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(id), patch, &out); err != nil {
		return workforce.Employee{}, err
	}
	return out, nil
}

func (b *remoteBackend) ListProjects(ctx context.Context) ([]workforce.Project, error) {
	var out []workforce.Project
	if err := b.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *remoteBackend) CreateProject(ctx context.Context, p workforce.Project) (workforce.Project, error) {
	var out workforce.Project
	if err := b.do(ctx, http.MethodPost, "/api/projects", p, &out); err != nil {
		return workforce.Project{}, err
	}
	return out, nil
}

func (b *remoteBackend) UpdateProject(ctx context.Context, id string, patch workforce.ProjectPatch) (workforce.Project, error) {
	var out workforce.Project
	if err := b.do(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(id), patch, &out); err != nil {
		return workforce.Project{}, err
	}
	return out, nil
}

func (b *remoteBackend) ProjectDashboard(ctx context.Context, projectID string) (workforce.ProjectDashboard, error) {
	var out workforce.ProjectDashboard
	if err := b.do(ctx, http.MethodGet, "/api/dashboard/pm/"+url.PathEscape(projectID), nil, &out); err != nil {
		return workforce.ProjectDashboard{}, err
	}
	return out, nil
}

func (b *remoteBackend) ListTimesheetApprovals(ctx context.Context) ([]workforce.TimesheetApproval, error) {
	var out []workforce.TimesheetApproval
	if err := b.do(ctx, http.MethodGet, "/api/timesheet/pending-approvals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *remoteBackend) SetTimesheetStatus(ctx context.Context, id, status string) (workforce.TimesheetApproval, error) {
	action := "approve"
	if status == workforce.TimesheetStatusRejected {
		action = "reject"
	}
	var out workforce.TimesheetApproval
	if err := b.do(ctx, http.MethodPost, "/api/timesheet/"+url.PathEscape(id)+"/"+action, nil, &out); err != nil {
		return workforce.TimesheetApproval{}, err
	}
	return out, nil
}

func (b *remoteBackend) ListProjectManagers(ctx context.Context) ([]workforce.ProjectManager, error) {
	var out []workforce.ProjectManager
	if err := b.do(ctx, http.MethodGet, "/api/users?role=PM", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTrades has no backend endpoint yet; the backlog item is tracked
// upstream. Real mode returns an empty list, matching the portal today.
func (b *remoteBackend) ListTrades(ctx context.Context) ([]string, error) {
	return []string{}, nil
}

func (b *remoteBackend) ListProjectsForManager(ctx context.Context, managerID string) ([]workforce.Project, error) {
	var out []workforce.Project
	if err := b.do(ctx, http.MethodGet, "/api/projects?managerId="+url.QueryEscape(managerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
