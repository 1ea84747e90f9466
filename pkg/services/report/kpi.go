package report

import "github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"

// ComputeKPI derives the global indicators for a filtered record set.
//
// The hourly-cost denominator deliberately uses the full date-range
// activity of the relevant collaborators, not only the filtered rows,
// so that a narrow multi-dimension filter does not inflate the rate.
// Relevant collaborators and clients are the filter's own sets when
// given, otherwise the distinct values present in the filtered set.
func ComputeKPI(
	filtered []domain.WorkRecord,
	all []domain.WorkRecord,
	c domain.FilterCriteria,
	comp domain.CompensationTable,
	rev domain.RevenueTable,
	remap domain.ClientRemap,
) domain.KPISummary {
	totalHours := sumHours(filtered)
	months := selectedMonths(filtered)

	collaborators := c.Collaborators
	if len(collaborators) == 0 {
		collaborators = distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Collaborator })
	}

	totalCost := 0.0
	for _, name := range collaborators {
		totalCost += compensationFor(comp, name, months)
	}

	relevant := make(map[string]struct{}, len(collaborators))
	for _, name := range collaborators {
		relevant[name] = struct{}{}
	}
	companyMinutes := 0
	for _, r := range all {
		if !inRange(r, c) {
			continue
		}
		if _, ok := relevant[r.Collaborator]; !ok {
			continue
		}
		companyMinutes += r.Minutes
	}
	companyHours := float64(companyMinutes) / 60

	averageHourlyCost := 0.0
	if companyHours > 0 {
		averageHourlyCost = totalCost / companyHours
	}
	filteredHoursCost := totalHours * averageHourlyCost

	clients := c.Clients
	if len(clients) == 0 {
		clients = distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Client })
	}
	totalRevenue := 0.0
	for _, client := range clients {
		totalRevenue += revenueFor(rev, remap, client, months)
	}

	margin, percentage := marginOf(totalRevenue, filteredHoursCost)

	return domain.KPISummary{
		TotalHours:        totalHours,
		AverageHourlyCost: averageHourlyCost,
		FilteredHoursCost: filteredHoursCost,
		TotalRevenue:      totalRevenue,
		Margin:            margin,
		MarginPercentage:  percentage,
	}
}
