package api

type KPISummary struct {
	TotalHours        float64 `json:"total_hours"`
	AverageHourlyCost float64 `json:"average_hourly_cost"`
	FilteredHoursCost float64 `json:"filtered_hours_cost"`
	TotalRevenue      float64 `json:"total_revenue"`
	Margin            float64 `json:"margin"`
	MarginPercentage  float64 `json:"margin_percentage"`
}

type HoursByEntity struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

type CollaboratorSummary struct {
	Collaborator        string  `json:"collaborator"`
	TotalCompensation   float64 `json:"total_compensation"`
	TotalPeriodHours    float64 `json:"total_period_hours"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`
	FilteredHours       float64 `json:"filtered_hours"`
	ClientsServed       int     `json:"clients_served"`
}

type DepartmentSummary struct {
	Department       string  `json:"department"`
	TotalPeriodHours float64 `json:"total_period_hours"`
	FilteredHours    float64 `json:"filtered_hours"`
	ClientsServed    int     `json:"clients_served"`
	Collaborators    int     `json:"collaborators"`
	MacroActivities  int     `json:"macro_activities"`
	TotalCost        float64 `json:"total_cost"`
	TotalRevenue     float64 `json:"total_revenue"`
	Margin           float64 `json:"margin"`
	MarginPercentage float64 `json:"margin_percentage"`
}

type ClientSummary struct {
	Client           string  `json:"client"`
	TotalPeriodHours float64 `json:"total_period_hours"`
	FilteredHours    float64 `json:"filtered_hours"`
	Collaborators    int     `json:"collaborators"`
	TotalCost        float64 `json:"total_cost"`
	TotalRevenue     float64 `json:"total_revenue"`
	Margin           float64 `json:"margin"`
	MarginPercentage float64 `json:"margin_percentage"`
}

type MonthlyRevenueRow struct {
	Client  string             `json:"client"`
	Monthly map[string]float64 `json:"monthly"`
	Total   float64            `json:"total"`
}

type MonthlyRevenueMatrix struct {
	Months     []string            `json:"months"`
	Rows       []MonthlyRevenueRow `json:"rows"`
	Totals     map[string]float64  `json:"totals"`
	GrandTotal float64             `json:"grand_total"`
}

type Dashboard struct {
	KPI                  KPISummary            `json:"kpi"`
	HoursByCollaborator  []HoursByEntity       `json:"hours_by_collaborator"`
	HoursByClient        []HoursByEntity       `json:"hours_by_client"`
	HoursByDepartment    []HoursByEntity       `json:"hours_by_department"`
	HoursByMacroActivity []HoursByEntity       `json:"hours_by_macro_activity"`
	HoursByMicroActivity []HoursByEntity       `json:"hours_by_micro_activity"`
	Collaborators        []CollaboratorSummary `json:"collaborators"`
	Departments          []DepartmentSummary   `json:"departments"`
	Clients              []ClientSummary       `json:"clients"`
	MonthlyRevenue       MonthlyRevenueMatrix  `json:"monthly_revenue"`
	RecordCount          int                   `json:"record_count"`
	FilteredCount        int                   `json:"filtered_count"`
	DroppedCount         int                   `json:"dropped_count"`
}

type FilterOptions struct {
	Collaborators   []string `json:"collaborators"`
	Departments     []string `json:"departments"`
	MacroActivities []string `json:"macro_activities"`
	Clients         []string `json:"clients"`
}

// MappingOverrides uses the category keys of the overrides file, which
// the dashboard frontend edits directly.
type MappingOverrides struct {
	Clients         map[string]string `json:"clienti"`
	Collaborators   map[string]string `json:"collaboratori"`
	Departments     map[string]string `json:"reparti"`
	MacroActivities map[string]string `json:"macroAttivita"`
	MicroActivities map[string]string `json:"microAttivita"`
}
