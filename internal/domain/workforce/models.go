package workforce

// Role determines navigation and data scope for an authenticated user.
type Role string

const (
	RoleHRAdmin Role = "HR_ADMIN"
	RolePM      Role = "PM"
	RoleForeman Role = "FOREMAN"
	RoleWorker  Role = "WORKER"
)

// Known reports whether r is one of the defined roles.
func (r Role) Known() bool {
	switch r {
	case RoleHRAdmin, RolePM, RoleForeman, RoleWorker:
		return true
	}
	return false
}

// Identity is the authenticated user attached to a session. It is immutable
// for the session's lifetime; a different identity requires a new login.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

const (
	EmployeeStatusActive   = "ACTIVE"
	EmployeeStatusInactive = "INACTIVE"
)

const (
	ProjectStatusPlanning  = "PLANNING"
	ProjectStatusActive    = "ACTIVE"
	ProjectStatusOnHold    = "ON_HOLD"
	ProjectStatusCompleted = "COMPLETED"
)

const (
	TimesheetStatusPending  = "PENDING"
	TimesheetStatusApproved = "APPROVED"
	TimesheetStatusRejected = "REJECTED"
)

type Employee struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Role                Role    `json:"role"`
	Trade               string  `json:"trade"`
	Status              string  `json:"status"`
	HourlyRate          float64 `json:"hourlyRate"`
	AssignedProjectID   string  `json:"assignedProjectId"`
	AssignedProjectName string  `json:"assignedProjectName"`
	HireDate            string  `json:"hireDate"`
}

// EmployeePatch carries the fields a caller may change on an employee.
// Nil pointers mean "leave unchanged". AssignedProjectName is filled by the
// data access layer from AssignedProjectID, never by callers.
type EmployeePatch struct {
	Name                *string  `json:"name,omitempty"`
	Email               *string  `json:"email,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Role                *Role    `json:"role,omitempty"`
	Trade               *string  `json:"trade,omitempty"`
	Status              *string  `json:"status,omitempty"`
	HourlyRate          *float64 `json:"hourlyRate,omitempty"`
	AssignedProjectID   *string  `json:"assignedProjectId,omitempty"`
	AssignedProjectName *string  `json:"assignedProjectName,omitempty"`
	HireDate            *string  `json:"hireDate,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Status       string   `json:"status"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	BudgetHours  float64  `json:"budgetHours"`
	BudgetCost   float64  `json:"budgetCost"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters float64  `json:"radiusMeters"`
	ManagerID    string   `json:"managerId"`
	ManagerName  string   `json:"managerName"`
	WorkerIDs    []string `json:"workerIds"`
	WorkerNames  []string `json:"workerNames"`
	Address      string   `json:"address"`
}

// ProjectPatch mirrors EmployeePatch for projects. ManagerName and
// WorkerNames are derived by the data access layer from ManagerID and
// WorkerIDs at write time.
type ProjectPatch struct {
	Name         *string   `json:"name,omitempty"`
	Code         *string   `json:"code,omitempty"`
	Status       *string   `json:"status,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	BudgetHours  *float64  `json:"budgetHours,omitempty"`
	BudgetCost   *float64  `json:"budgetCost,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	RadiusMeters *float64  `json:"radiusMeters,omitempty"`
	ManagerID    *string   `json:"managerId,omitempty"`
	ManagerName  *string   `json:"managerName,omitempty"`
	WorkerIDs    *[]string `json:"workerIds,omitempty"`
	WorkerNames  *[]string `json:"workerNames,omitempty"`
	Address      *string   `json:"address,omitempty"`
}

type TimesheetApproval struct {
	ID            string  `json:"id"`
	WorkerName    string  `json:"workerName"`
	ProjectID     string  `json:"projectId"`
	ProjectName   string  `json:"projectName"`
	WeekEnding    string  `json:"weekEnding"`
	SubmittedAt   string  `json:"submittedAt"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Status        string  `json:"status"`
	ProcessedAt   string  `json:"processedAt,omitempty"`
}

type ProjectManager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdminDashboard is a read-only projection for the HR admin landing page.
type AdminDashboard struct {
	Summary        []SummaryTile  `json:"summary"`
	Alerts         []Alert        `json:"alerts"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

type SummaryTile struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Alert struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

type ActivityItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// ProjectDashboard is the per-project reporting projection. It is never
// mutated through this core, only recomputed upstream.
type ProjectDashboard struct {
	ProjectID        string            `json:"projectId"`
	ProjectName      string            `json:"projectName"`
	WeekOf           string            `json:"weekOf"`
	Hours            HoursSummary      `json:"hours"`
	Budget           BudgetSummary     `json:"budget"`
	Attendance       AttendanceSummary `json:"attendance"`
	Performance      PerformanceScores `json:"performance"`
	PendingApprovals int               `json:"pendingApprovals"`
}

type HoursSummary struct {
	Planned  float64 `json:"planned"`
	Used     float64 `json:"used"`
	Variance float64 `json:"variance"`
}

type BudgetSummary struct {
	Planned  float64 `json:"planned"`
	Spent    float64 `json:"spent"`
	Variance float64 `json:"variance"`
}

type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Tardy   int `json:"tardy"`
}

type PerformanceScores struct {
	QualityScore      int `json:"qualityScore"`
	SafetyScore       int `json:"safetyScore"`
	ProductivityScore int `json:"productivityScore"`
}

// AuthPayload is what a successful login returns, and what the session
// store persists.
type AuthPayload struct {
	AccessToken string   `json:"accessToken"`
	User        Identity `json:"user"`
}
