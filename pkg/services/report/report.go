// Package report computes the financial indicators of the dashboard:
// global KPIs, per-entity summaries with proportional cost and revenue
// allocation, and the client-by-month revenue matrix. Every function
// is a pure derivation over its inputs; nothing here holds state
// between calls.
package report

import (
	"sort"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

// selectedMonths returns the distinct month labels present in the
// filtered set, in calendar order.
func selectedMonths(filtered []domain.WorkRecord) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, r := range filtered {
		if _, ok := seen[r.MonthLabel]; ok {
			continue
		}
		seen[r.MonthLabel] = struct{}{}
		months = append(months, r.MonthLabel)
	}
	sort.Slice(months, func(i, j int) bool {
		return domain.MonthIndex(months[i]) < domain.MonthIndex(months[j])
	})
	return months
}

// distinctSorted returns the distinct values of one field, ascending.
func distinctSorted(records []domain.WorkRecord, key func(domain.WorkRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := key(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sumHours(records []domain.WorkRecord) float64 {
	minutes := 0
	for _, r := range records {
		minutes += r.Minutes
	}
	return float64(minutes) / 60
}

func inRange(r domain.WorkRecord, c domain.FilterCriteria) bool {
	return !r.Date.Before(c.Start) && !r.Date.After(c.End)
}

// compensationFor sums a collaborator's compensation over the given
// months. Missing collaborators and missing months are worth zero.
func compensationFor(comp domain.CompensationTable, collaborator string, months []string) float64 {
	byMonth, ok := comp[collaborator]
	if !ok {
		return 0
	}
	total := 0.0
	for _, m := range months {
		total += byMonth[m]
	}
	return total
}

// revenueFor sums a client's revenue over the given months, resolving
// the billing name through the remap table and parsing the EU-format
// amounts. Missing clients, months and unparsable cells are zero.
func revenueFor(rev domain.RevenueTable, remap domain.ClientRemap, client string, months []string) float64 {
	byMonth, ok := rev[remap.Resolve(client)]
	if !ok {
		return 0
	}
	total := 0.0
	for _, m := range months {
		total += ParseEuAmount(byMonth[m])
	}
	return total
}

// marginOf computes margin and margin percentage with the zero-revenue
// guard: a revenue of zero reports 0%, never NaN.
func marginOf(revenue, cost float64) (margin, percentage float64) {
	margin = revenue - cost
	if revenue > 0 {
		percentage = margin / revenue * 100
	}
	return margin, percentage
}
