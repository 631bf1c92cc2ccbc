package workforce

import "time"

// Dataset is the canonical mock-mode record set. The mock store takes
// ownership of one on start; nothing else should hold a reference to it.
type Dataset struct {
	Employees         []Employee
	Projects          []Project
	AdminDashboard    AdminDashboard
	ProjectDashboards map[string]ProjectDashboard
	Timesheets        []TimesheetApproval
	ProjectManagers   []ProjectManager
	Trades            []string
	DefaultPMProject  string
	HRAdminUser       Identity
	PMUser            Identity
}

// SeedData builds The Gap Company's demo dataset. Activity timestamps are
// derived from now so the admin dashboard always shows recent entries.
func SeedData(now time.Time) *Dataset {
	hrAdmin := Identity{
		ID:    "user-hr-001",
		Name:  "Tariro Moyo",
		Email: "tariro.moyo@thegapcompany.co.zw",
		Role:  RoleHRAdmin,
	}
	pm := Identity{
		ID:    "user-pm-001",
		Name:  "Kudzai Ndlovu",
		Email: "kudzai.ndlovu@thegapcompany.co.zw",
		Role:  RolePM,
	}

	managers := []ProjectManager{
		{ID: pm.ID, Name: pm.Name},
		{ID: "user-pm-002", Name: "Faith Mlambo"},
		{ID: "user-pm-003", Name: "Lewis Banda"},
	}

	employees := []Employee{
		{
			ID: "EMP-001", Name: "Tadiwa Chikomba", Role: RoleForeman, Trade: "Carpenter",
			Email: "tadiwa.chikomba@thegapcompany.co.zw", Phone: "+263 77 234 8812",
			Status: EmployeeStatusActive, HourlyRate: 42,
			AssignedProjectID: "PRJ-001", AssignedProjectName: "Harare CBD Office Fit-Out",
			HireDate: "2023-02-14",
		},
		{
			ID: "EMP-002", Name: "Ruvimbo Nyathi", Role: RoleWorker, Trade: "Electrician",
			Email: "ruvimbo.nyathi@thegapcompany.co.zw", Phone: "+263 77 365 9921",
			Status: EmployeeStatusActive, HourlyRate: 36,
			AssignedProjectID: "PRJ-002", AssignedProjectName: "Bulawayo Industrial Depot",
			HireDate: "2022-10-03",
		},
		{
			ID: "EMP-003", Name: "Simba Dube", Role: RoleWorker, Trade: "Steel Worker",
			Email: "simba.dube@thegapcompany.co.zw", Phone: "+263 71 442 1184",
			Status: EmployeeStatusInactive, HourlyRate: 34,
			AssignedProjectID: "PRJ-001", AssignedProjectName: "Harare CBD Office Fit-Out",
			HireDate: "2021-06-28",
		},
		{
			ID: "EMP-004", Name: "Tatenda Moyo", Role: RoleForeman, Trade: "Painter",
			Email: "tatenda.moyo@thegapcompany.co.zw", Phone: "+263 77 530 7744",
			Status: EmployeeStatusActive, HourlyRate: 40,
			AssignedProjectID: "PRJ-003", AssignedProjectName: "Mutare Solar Works",
			HireDate: "2024-03-19",
		},
	}

	projects := []Project{
		{
			ID: "PRJ-001", Name: "Harare CBD Office Fit-Out", Code: "HCO-25",
			Status: ProjectStatusActive, StartDate: "2024-06-10", EndDate: "2025-04-30",
			BudgetHours: 3800, BudgetCost: 295000,
			Latitude: -17.8252, Longitude: 31.0335, RadiusMeters: 180,
			ManagerID: pm.ID, ManagerName: pm.Name,
			WorkerIDs: []string{"EMP-001", "EMP-003"}, WorkerNames: []string{"Tadiwa Chikomba", "Simba Dube"},
			Address: "48 Jason Moyo Ave, Harare",
		},
		{
			ID: "PRJ-002", Name: "Bulawayo Industrial Depot", Code: "BID-25",
			Status: ProjectStatusActive, StartDate: "2024-02-20", EndDate: "2025-11-15",
			BudgetHours: 5100, BudgetCost: 410000,
			Latitude: -20.1325, Longitude: 28.6265, RadiusMeters: 240,
			ManagerID: "user-pm-002", ManagerName: "Faith Mlambo",
			WorkerIDs: []string{"EMP-002"}, WorkerNames: []string{"Ruvimbo Nyathi"},
			Address: "1146 Khami Rd, Bulawayo",
		},
		{
			ID: "PRJ-003", Name: "Mutare Solar Works", Code: "MSW-25",
			Status: ProjectStatusPlanning, StartDate: "2025-03-01", EndDate: "2026-07-30",
			BudgetHours: 5900, BudgetCost: 475000,
			Latitude: -18.9707, Longitude: 32.6709, RadiusMeters: 200,
			ManagerID: "user-pm-003", ManagerName: "Lewis Banda",
			WorkerIDs: []string{"EMP-004"}, WorkerNames: []string{"Tatenda Moyo"},
			Address: "32 Aerodrome Rd, Mutare",
		},
	}

	activeEmployees := 0
	for _, e := range employees {
		if e.Status == EmployeeStatusActive {
			activeEmployees++
		}
	}
	openProjects := 0
	for _, p := range projects {
		if p.Status == ProjectStatusActive {
			openProjects++
		}
	}

	admin := AdminDashboard{
		Summary: []SummaryTile{
			{Label: "Active Employees", Value: activeEmployees},
			{Label: "Open Projects", Value: openProjects},
			{Label: "Pending Timesheets", Value: 7},
			{Label: "Safety Incidents (30d)", Value: 1},
		},
		Alerts: []Alert{
			{
				ID:     "alert-1",
				Title:  "Safety refreshers due",
				Detail: "Three electrical workers need site safety refreshers in 14 days.",
				Type:   "warning",
			},
			{
				ID:     "alert-2",
				Title:  "Overtime trending up",
				Detail: "Harare CBD Office Fit-Out exceeded its overtime threshold last week.",
				Type:   "info",
			},
		},
		RecentActivity: []ActivityItem{
			{
				ID:          "activity-1",
				Description: "Timesheet approved for Tadiwa Chikomba (PRJ-001)",
				Timestamp:   now.Add(-55 * time.Minute).UTC().Format(time.RFC3339),
			},
			{
				ID:          "activity-2",
				Description: "New worker onboarded: Precious Chuma",
				Timestamp:   now.Add(-5 * time.Hour).UTC().Format(time.RFC3339),
			},
			{
				ID:          "activity-3",
				Description: "Project status updated: Mutare Solar Works",
				Timestamp:   now.Add(-26 * time.Hour).UTC().Format(time.RFC3339),
			},
		},
	}

	dashboards := map[string]ProjectDashboard{
		"PRJ-001": {
			ProjectID: "PRJ-001", ProjectName: "Harare CBD Office Fit-Out", WeekOf: "2025-01-05",
			Hours:            HoursSummary{Planned: 3800, Used: 1510, Variance: -85},
			Budget:           BudgetSummary{Planned: 295000, Spent: 118400, Variance: -16200},
			Attendance:       AttendanceSummary{Present: 36, Absent: 2, Tardy: 3},
			Performance:      PerformanceScores{QualityScore: 92, SafetyScore: 97, ProductivityScore: 89},
			PendingApprovals: 5,
		},
		"PRJ-002": {
			ProjectID: "PRJ-002", ProjectName: "Bulawayo Industrial Depot", WeekOf: "2025-01-05",
			Hours:            HoursSummary{Planned: 5100, Used: 2030, Variance: -40},
			Budget:           BudgetSummary{Planned: 410000, Spent: 171300, Variance: -8700},
			Attendance:       AttendanceSummary{Present: 32, Absent: 1, Tardy: 4},
			Performance:      PerformanceScores{QualityScore: 91, SafetyScore: 96, ProductivityScore: 90},
			PendingApprovals: 2,
		},
	}

	timesheets := []TimesheetApproval{
		{
			ID: "TS-1001", WorkerName: "Tadiwa Chikomba",
			ProjectID: "PRJ-001", ProjectName: "Harare CBD Office Fit-Out",
			WeekEnding: "2024-12-27", SubmittedAt: "2024-12-28T17:30:00Z",
			TotalHours: 42, OvertimeHours: 4, Status: TimesheetStatusPending,
		},
		{
			ID: "TS-1002", WorkerName: "Ruvimbo Nyathi",
			ProjectID: "PRJ-002", ProjectName: "Bulawayo Industrial Depot",
			WeekEnding: "2024-12-27", SubmittedAt: "2024-12-28T16:45:00Z",
			TotalHours: 40, OvertimeHours: 0, Status: TimesheetStatusPending,
		},
		{
			ID: "TS-1003", WorkerName: "Tatenda Moyo",
			ProjectID: "PRJ-003", ProjectName: "Mutare Solar Works",
			WeekEnding: "2024-12-20", SubmittedAt: "2024-12-21T15:10:00Z",
			TotalHours: 38, OvertimeHours: 0, Status: TimesheetStatusPending,
		},
	}

	return &Dataset{
		Employees:         employees,
		Projects:          projects,
		AdminDashboard:    admin,
		ProjectDashboards: dashboards,
		Timesheets:        timesheets,
		ProjectManagers:   managers,
		Trades:            []string{"Carpenter", "Electrician", "Plumber", "Steel Worker", "Painter"},
		DefaultPMProject:  "PRJ-001",
		HRAdminUser:       hrAdmin,
		PMUser:            pm,
	}
}
