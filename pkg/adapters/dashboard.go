package adapters

import (
	"github.com/Sabinoze00/logbook-aziendale/pkg/models/api"
	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

func MapDashboardDomainToApi(d domain.Dashboard) api.Dashboard {
	return api.Dashboard{
		KPI:                  MapKPIDomainToApi(d.KPI),
		HoursByCollaborator:  mapHours(d.HoursByCollaborator),
		HoursByClient:        mapHours(d.HoursByClient),
		HoursByDepartment:    mapHours(d.HoursByDepartment),
		HoursByMacroActivity: mapHours(d.HoursByMacroActivity),
		HoursByMicroActivity: mapHours(d.HoursByMicroActivity),
		Collaborators:        mapCollaborators(d.Collaborators),
		Departments:          mapDepartments(d.Departments),
		Clients:              mapClients(d.Clients),
		MonthlyRevenue:       MapMonthlyRevenueDomainToApi(d.MonthlyRevenue),
		RecordCount:          d.RecordCount,
		FilteredCount:        d.FilteredCount,
		DroppedCount:         d.DroppedCount,
	}
}

func MapKPIDomainToApi(k domain.KPISummary) api.KPISummary {
	return api.KPISummary{
		TotalHours:        k.TotalHours,
		AverageHourlyCost: k.AverageHourlyCost,
		FilteredHoursCost: k.FilteredHoursCost,
		TotalRevenue:      k.TotalRevenue,
		Margin:            k.Margin,
		MarginPercentage:  k.MarginPercentage,
	}
}

func MapMonthlyRevenueDomainToApi(m domain.MonthlyRevenueMatrix) api.MonthlyRevenueMatrix {
	out := api.MonthlyRevenueMatrix{
		Months:     m.Months,
		Rows:       make([]api.MonthlyRevenueRow, 0, len(m.Rows)),
		Totals:     m.Totals,
		GrandTotal: m.GrandTotal,
	}
	for _, row := range m.Rows {
		out.Rows = append(out.Rows, api.MonthlyRevenueRow{
			Client:  row.Client,
			Monthly: row.Monthly,
			Total:   row.Total,
		})
	}
	return out
}

func MapFilterOptionsDomainToApi(o domain.FilterOptions) api.FilterOptions {
	return api.FilterOptions{
		Collaborators:   o.Collaborators,
		Departments:     o.Departments,
		MacroActivities: o.MacroActivities,
		Clients:         o.Clients,
	}
}

func MapOverridesDomainToApi(o domain.CategoryOverrides) api.MappingOverrides {
	return api.MappingOverrides{
		Clients:         o.Clients,
		Collaborators:   o.Collaborators,
		Departments:     o.Departments,
		MacroActivities: o.MacroActivities,
		MicroActivities: o.MicroActivities,
	}
}

func MapOverridesApiToDomain(o api.MappingOverrides) domain.CategoryOverrides {
	return domain.CategoryOverrides{
		Clients:         o.Clients,
		Collaborators:   o.Collaborators,
		Departments:     o.Departments,
		MacroActivities: o.MacroActivities,
		MicroActivities: o.MicroActivities,
	}
}

func mapHours(rows []domain.HoursByEntity) []api.HoursByEntity {
	out := make([]api.HoursByEntity, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.HoursByEntity{Name: r.Name, Hours: r.Hours})
	}
	return out
}

func mapCollaborators(rows []domain.CollaboratorSummary) []api.CollaboratorSummary {
	out := make([]api.CollaboratorSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.CollaboratorSummary{
			Collaborator:        r.Collaborator,
			TotalCompensation:   r.TotalCompensation,
			TotalPeriodHours:    r.TotalPeriodHours,
			EffectiveHourlyRate: r.EffectiveHourlyRate,
			FilteredHours:       r.FilteredHours,
			ClientsServed:       r.ClientsServed,
		})
	}
	return out
}

func mapDepartments(rows []domain.DepartmentSummary) []api.DepartmentSummary {
	out := make([]api.DepartmentSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.DepartmentSummary{
			Department:       r.Department,
			TotalPeriodHours: r.TotalPeriodHours,
			FilteredHours:    r.FilteredHours,
			ClientsServed:    r.ClientsServed,
			Collaborators:    r.Collaborators,
			MacroActivities:  r.MacroActivities,
			TotalCost:        r.TotalCost,
			TotalRevenue:     r.TotalRevenue,
			Margin:           r.Margin,
			MarginPercentage: r.MarginPercentage,
		})
	}
	return out
}

func mapClients(rows []domain.ClientSummary) []api.ClientSummary {
	out := make([]api.ClientSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.ClientSummary{
			Client:           r.Client,
			TotalPeriodHours: r.TotalPeriodHours,
			FilteredHours:    r.FilteredHours,
			Collaborators:    r.Collaborators,
			TotalCost:        r.TotalCost,
			TotalRevenue:     r.TotalRevenue,
			Margin:           r.Margin,
			MarginPercentage: r.MarginPercentage,
		})
	}
	return out
}
