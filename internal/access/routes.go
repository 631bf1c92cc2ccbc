package access

// Route paths shared between the gate and its callers.
const (
	PathLogin              = "/login"
	PathApp                = "/app"
	PathAdmin              = "/app/admin"
	PathAdminDashboard     = "/app/admin/dashboard"
	PathAdminEmployees     = "/app/admin/employees"
	PathAdminProjects      = "/app/admin/projects"
	PathPM                 = "/app/pm"
	PathPMDashboardCurrent = "/app/pm/dashboard/current"
	PathPMTimesheets       = "/app/pm/approvals/timesheets"
)
