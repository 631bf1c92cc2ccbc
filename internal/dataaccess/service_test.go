package dataaccess

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/mockstore"
	"fieldforce/internal/platform/config"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func newMockService(t *testing.T, latency time.Duration) *Service {
	t.Helper()
	store := mockstore.New(workforce.SeedData(testNow), func() time.Time { return testNow })
	svc, err := New(config.Config{UseMock: true, MockLatency: latency}, nil, store)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestMockModeIntroducesMinimumLatency(t *testing.T) {
	const latency = 30 * time.Millisecond
	svc := newMockService(t, latency)

	start := time.Now()
	if _, err := svc.ListEmployees(context.Background()); err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if elapsed := time.Since(start); elapsed < latency {
		t.Fatalf("call resolved in %v, want at least %v", elapsed, latency)
	}
}

func TestMockModeHonorsContextCancellation(t *testing.T) {
	svc := newMockService(t, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.ListEmployees(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestCreateEmployeeDenormalizesProjectName(t *testing.T) {
	svc := newMockService(t, 0)

	created, err := svc.CreateEmployee(context.Background(), workforce.Employee{
		Name:              "X",
		Email:             "x@y.com",
		AssignedProjectID: "PRJ-002",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.AssignedProjectName != "Bulawayo Industrial Depot" {
		t.Fatalf("assignedProjectName = %q", created.AssignedProjectName)
	}
	if created.ID != "EMP-005" {
		t.Fatalf("id = %q", created.ID)
	}
	if created.Status != workforce.EmployeeStatusActive {
		t.Fatalf("status = %q", created.Status)
	}
	if created.HireDate != testNow.Format("2006-01-02") {
		t.Fatalf("hireDate = %q", created.HireDate)
	}
}

func TestCreateEmployeeRejectsUnknownProject(t *testing.T) {
	svc := newMockService(t, 0)

	_, err := svc.CreateEmployee(context.Background(), workforce.Employee{
		Name:              "X",
		AssignedProjectID: "PRJ-404",
	})
	if !errors.Is(err, workforce.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateEmployeeReassignmentRefreshesProjectName(t *testing.T) {
	svc := newMockService(t, 0)

	projectID := "PRJ-003"
	updated, err := svc.UpdateEmployee(context.Background(), "EMP-001", workforce.EmployeePatch{
		AssignedProjectID: &projectID,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.AssignedProjectName != "Mutare Solar Works" {
		t.Fatalf("assignedProjectName = %q", updated.AssignedProjectName)
	}

	// Unassignment clears the cached name.
	empty := ""
	updated, err = svc.UpdateEmployee(context.Background(), "EMP-001", workforce.EmployeePatch{
		AssignedProjectID: &empty,
	})
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if updated.AssignedProjectName != "" {
		t.Fatalf("assignedProjectName = %q after unassignment", updated.AssignedProjectName)
	}
}

func TestSetEmployeeStatus(t *testing.T) {
	svc := newMockService(t, 0)

	updated, err := svc.SetEmployeeStatus(context.Background(), "EMP-002", workforce.EmployeeStatusInactive)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != workforce.EmployeeStatusInactive {
		t.Fatalf("status = %q", updated.Status)
	}
}

func TestCreateProjectDenormalizesNames(t *testing.T) {
	svc := newMockService(t, 0)

	created, err := svc.CreateProject(context.Background(), workforce.Project{
		Name:      "Gweru Grain Silos",
		ManagerID: "user-pm-002",
		WorkerIDs: []string{"EMP-001", "EMP-002"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ManagerName != "Faith Mlambo" {
		t.Fatalf("managerName = %q", created.ManagerName)
	}
	want := []string{"Tadiwa Chikomba", "Ruvimbo Nyathi"}
	if len(created.WorkerNames) != len(want) {
		t.Fatalf("workerNames = %v", created.WorkerNames)
	}
	for i := range want {
		if created.WorkerNames[i] != want[i] {
			t.Fatalf("workerNames = %v, want %v", created.WorkerNames, want)
		}
	}
}

func TestUpdateProjectCrewChangeRefreshesWorkerNames(t *testing.T) {
	svc := newMockService(t, 0)

	crew := []string{"EMP-004"}
	updated, err := svc.UpdateProject(context.Background(), "PRJ-001", workforce.ProjectPatch{
		WorkerIDs: &crew,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.WorkerNames) != 1 || updated.WorkerNames[0] != "Tatenda Moyo" {
		t.Fatalf("workerNames = %v", updated.WorkerNames)
	}
}

func TestUpdateProjectRejectsUnknownWorker(t *testing.T) {
	svc := newMockService(t, 0)

	crew := []string{"EMP-404"}
	_, err := svc.UpdateProject(context.Background(), "PRJ-001", workforce.ProjectPatch{WorkerIDs: &crew})
	if !errors.Is(err, workforce.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestApproveAndRejectTimesheets(t *testing.T) {
	svc := newMockService(t, 0)

	approved, err := svc.ApproveTimesheet(context.Background(), "TS-1001")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != workforce.TimesheetStatusApproved || approved.ProcessedAt == "" {
		t.Fatalf("approved = %+v", approved)
	}

	rejected, err := svc.RejectTimesheet(context.Background(), "TS-1002")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != workforce.TimesheetStatusRejected {
		t.Fatalf("rejected = %+v", rejected)
	}

	if _, err := svc.ApproveTimesheet(context.Background(), "TS-1001"); !errors.Is(err, workforce.ErrAlreadyProcessed) {
		t.Fatalf("second decision error = %v", err)
	}
}

func TestDevAuthPayloadScenario(t *testing.T) {
	svc := newMockService(t, 0)

	payload, err := svc.DevAuthPayload(workforce.RolePM)
	if err != nil {
		t.Fatalf("dev auth: %v", err)
	}
	if payload.AccessToken != "mock-token-pm" {
		t.Fatalf("accessToken = %q", payload.AccessToken)
	}
	if payload.User.ID != "user-pm-001" || payload.User.Role != workforce.RolePM {
		t.Fatalf("user = %+v", payload.User)
	}
}

func TestDevAuthPayloadRequiresMockMode(t *testing.T) {
	svc, err := New(config.Config{UseMock: false, APIBaseURL: "http://localhost:1", RequestTimeout: time.Second}, nil, nil)
	if err != nil {
		t.Fatalf("building real-mode service: %v", err)
	}
	if _, err := svc.DevAuthPayload(workforce.RolePM); !errors.Is(err, workforce.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
}

func TestMockLoginUsesSeededIdentities(t *testing.T) {
	svc := newMockService(t, 0)

	payload, err := svc.Login(context.Background(), "tariro.moyo@thegapcompany.co.zw", "ignored")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if payload.AccessToken != "mock-token-admin" || payload.User.Role != workforce.RoleHRAdmin {
		t.Fatalf("payload = %+v", payload)
	}

	if _, err := svc.Login(context.Background(), "nobody@thegapcompany.co.zw", "pw"); !errors.Is(err, workforce.ErrNotFound) {
		t.Fatalf("unknown user error = %v", err)
	}
}

func TestDefaultPMProjectID(t *testing.T) {
	svc := newMockService(t, 0)
	if got := svc.DefaultPMProjectID(); got != "PRJ-001" {
		t.Fatalf("default project = %q", got)
	}

	real, err := New(config.Config{UseMock: false, APIBaseURL: "http://localhost:1", RequestTimeout: time.Second}, nil, nil)
	if err != nil {
		t.Fatalf("real-mode service: %v", err)
	}
	if got := real.DefaultPMProjectID(); got != "" {
		t.Fatalf("real-mode default project = %q, want empty", got)
	}
}

func TestNewRequiresMockStoreInMockMode(t *testing.T) {
	_, err := New(config.Config{UseMock: true}, nil, nil)
	if !errors.Is(err, workforce.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
}
