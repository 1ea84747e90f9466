package report

import "github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"

// Cost and revenue attribution for departments and clients.
//
// Cost is charged per contributing collaborator: their own hourly rate
// (selected-months compensation over period hours) times the hours
// they logged for the entity. Revenue is split across entities
// strictly in proportion to the filtered hours logged against each
// client, never by entity identity alone, so summing the allocations
// of one client across all entities reproduces that client's own
// revenue up to floating-point rounding.

// hourlyRates computes each filtered collaborator's own hourly cost:
// selected-months compensation divided by their date-range period
// hours, zero when they logged none.
func hourlyRates(
	filtered []domain.WorkRecord,
	all []domain.WorkRecord,
	c domain.FilterCriteria,
	comp domain.CompensationTable,
	months []string,
) map[string]float64 {
	periodMinutes := make(map[string]int)
	for _, r := range all {
		if inRange(r, c) {
			periodMinutes[r.Collaborator] += r.Minutes
		}
	}

	rates := make(map[string]float64)
	for _, r := range filtered {
		if _, ok := rates[r.Collaborator]; ok {
			continue
		}
		rate := 0.0
		if hours := float64(periodMinutes[r.Collaborator]) / 60; hours > 0 {
			rate = compensationFor(comp, r.Collaborator, months) / hours
		}
		rates[r.Collaborator] = rate
	}
	return rates
}

// clientHourShares sums the filtered hours logged against each client
// by every entity; these totals are the allocation denominators.
func clientHourShares(filtered []domain.WorkRecord) map[string]float64 {
	shares := make(map[string]float64)
	for _, r := range filtered {
		shares[r.Client] += float64(r.Minutes) / 60
	}
	return shares
}

// DepartmentSummaries builds one row per department in the filtered
// set, sorted by department name, with proportionally allocated cost
// and revenue.
func DepartmentSummaries(
	filtered []domain.WorkRecord,
	all []domain.WorkRecord,
	c domain.FilterCriteria,
	comp domain.CompensationTable,
	rev domain.RevenueTable,
	remap domain.ClientRemap,
) []domain.DepartmentSummary {
	months := selectedMonths(filtered)
	rates := hourlyRates(filtered, all, c, comp, months)
	shares := clientHourShares(filtered)
	departments := distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Department })

	summaries := make([]domain.DepartmentSummary, 0, len(departments))
	for _, department := range departments {
		var entries []domain.WorkRecord
		for _, r := range filtered {
			if r.Department == department {
				entries = append(entries, r)
			}
		}

		periodMinutes := 0
		for _, r := range all {
			if r.Department == department && inRange(r, c) {
				periodMinutes += r.Minutes
			}
		}

		collaborators := make(map[string]float64) // hours per collaborator
		clients := make(map[string]float64)       // hours per client
		macroActivities := make(map[string]struct{})
		for _, r := range entries {
			hours := float64(r.Minutes) / 60
			collaborators[r.Collaborator] += hours
			clients[r.Client] += hours
			macroActivities[r.MacroActivity] = struct{}{}
		}

		cost := 0.0
		for name, hours := range collaborators {
			cost += rates[name] * hours
		}

		revenue := 0.0
		for client, hours := range clients {
			if total := shares[client]; total > 0 {
				revenue += hours / total * revenueFor(rev, remap, client, months)
			}
		}

		margin, percentage := marginOf(revenue, cost)

		summaries = append(summaries, domain.DepartmentSummary{
			Department:       department,
			TotalPeriodHours: float64(periodMinutes) / 60,
			FilteredHours:    sumHours(entries),
			ClientsServed:    len(clients),
			Collaborators:    len(collaborators),
			MacroActivities:  len(macroActivities),
			TotalCost:        cost,
			TotalRevenue:     revenue,
			Margin:           margin,
			MarginPercentage: percentage,
		})
	}
	return summaries
}

// ClientSummaries builds one row per client in the filtered set,
// sorted by client name. A client's revenue share of itself is whole,
// so its revenue is the direct selected-months lookup; cost follows
// the same per-collaborator rate rule as departments.
func ClientSummaries(
	filtered []domain.WorkRecord,
	all []domain.WorkRecord,
	c domain.FilterCriteria,
	comp domain.CompensationTable,
	rev domain.RevenueTable,
	remap domain.ClientRemap,
) []domain.ClientSummary {
	months := selectedMonths(filtered)
	rates := hourlyRates(filtered, all, c, comp, months)
	clients := distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Client })

	summaries := make([]domain.ClientSummary, 0, len(clients))
	for _, client := range clients {
		collaborators := make(map[string]float64)
		filteredMinutes := 0
		for _, r := range filtered {
			if r.Client != client {
				continue
			}
			collaborators[r.Collaborator] += float64(r.Minutes) / 60
			filteredMinutes += r.Minutes
		}

		periodMinutes := 0
		for _, r := range all {
			if r.Client == client && inRange(r, c) {
				periodMinutes += r.Minutes
			}
		}

		cost := 0.0
		for name, hours := range collaborators {
			cost += rates[name] * hours
		}

		revenue := revenueFor(rev, remap, client, months)
		margin, percentage := marginOf(revenue, cost)

		summaries = append(summaries, domain.ClientSummary{
			Client:           client,
			TotalPeriodHours: float64(periodMinutes) / 60,
			FilteredHours:    float64(filteredMinutes) / 60,
			Collaborators:    len(collaborators),
			TotalCost:        cost,
			TotalRevenue:     revenue,
			Margin:           margin,
			MarginPercentage: percentage,
		})
	}
	return summaries
}
