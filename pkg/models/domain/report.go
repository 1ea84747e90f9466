package domain

// KPISummary holds the global indicators computed for a filtered
// record set. All values are derived on demand and never persisted.
type KPISummary struct {
	TotalHours        float64
	AverageHourlyCost float64
	FilteredHoursCost float64
	TotalRevenue      float64
	Margin            float64
	MarginPercentage  float64
}

// HoursByEntity is one row of a group-by-hours aggregation.
type HoursByEntity struct {
	Name  string
	Hours float64
}

// CollaboratorSummary reports one collaborator's activity and
// compensation over the selected period.
//
// EffectiveHourlyRate is compensation divided by period hours; it is
// the sentinel -1 when the collaborator was compensated without any
// logged hours, and 0 when both are zero.
type CollaboratorSummary struct {
	Collaborator        string
	TotalCompensation   float64
	TotalPeriodHours    float64
	EffectiveHourlyRate float64
	FilteredHours       float64
	ClientsServed       int
}

// DepartmentSummary reports one department's activity together with
// its proportionally allocated cost, revenue and margin.
type DepartmentSummary struct {
	Department       string
	TotalPeriodHours float64
	FilteredHours    float64
	ClientsServed    int
	Collaborators    int
	MacroActivities  int
	TotalCost        float64
	TotalRevenue     float64
	Margin           float64
	MarginPercentage float64
}

// ClientSummary reports one client's activity together with its
// proportionally allocated cost and its revenue over the selected
// months.
type ClientSummary struct {
	Client           string
	TotalPeriodHours float64
	FilteredHours    float64
	Collaborators    int
	TotalCost        float64
	TotalRevenue     float64
	Margin           float64
	MarginPercentage float64
}

// MonthlyRevenueRow is one client's revenue split by month label.
type MonthlyRevenueRow struct {
	Client  string
	Monthly map[string]float64
	Total   float64
}

// MonthlyRevenueMatrix is the client-by-month revenue export view.
// Months are in calendar order; Totals holds the per-month column sums
// for every client in the matrix.
type MonthlyRevenueMatrix struct {
	Months     []string
	Rows       []MonthlyRevenueRow
	Totals     map[string]float64
	GrandTotal float64
}

// Dashboard is the full report payload assembled for one filter
// application: the global KPIs, the per-dimension hour breakdowns, the
// three summary tables and the monthly revenue matrix.
type Dashboard struct {
	KPI                  KPISummary
	HoursByCollaborator  []HoursByEntity
	HoursByClient        []HoursByEntity
	HoursByDepartment    []HoursByEntity
	HoursByMacroActivity []HoursByEntity
	HoursByMicroActivity []HoursByEntity
	Collaborators        []CollaboratorSummary
	Departments          []DepartmentSummary
	Clients              []ClientSummary
	MonthlyRevenue       MonthlyRevenueMatrix
	RecordCount          int
	FilteredCount        int
	DroppedCount         int
}

// FilterOptions lists the distinct canonical values available for each
// filter dimension, sorted ascending.
type FilterOptions struct {
	Collaborators   []string
	Departments     []string
	MacroActivities []string
	Clients         []string
}
