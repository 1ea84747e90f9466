package report

import "github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"

// CollaboratorSummaries builds one summary row per collaborator in the
// filtered set, sorted by collaborator name.
//
// Period hours count every record of the collaborator inside the date
// range, unfiltered by the other dimensions. A collaborator who was
// compensated in the selected months without logging any period hours
// gets the -1 rate sentinel instead of a computed rate.
func CollaboratorSummaries(
	filtered []domain.WorkRecord,
	all []domain.WorkRecord,
	c domain.FilterCriteria,
	comp domain.CompensationTable,
) []domain.CollaboratorSummary {
	months := selectedMonths(filtered)
	names := distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Collaborator })

	summaries := make([]domain.CollaboratorSummary, 0, len(names))
	for _, name := range names {
		filteredMinutes := 0
		clients := make(map[string]struct{})
		for _, r := range filtered {
			if r.Collaborator != name {
				continue
			}
			filteredMinutes += r.Minutes
			clients[r.Client] = struct{}{}
		}

		periodMinutes := 0
		for _, r := range all {
			if r.Collaborator == name && inRange(r, c) {
				periodMinutes += r.Minutes
			}
		}
		periodHours := float64(periodMinutes) / 60

		compensation := compensationFor(comp, name, months)

		rate := 0.0
		switch {
		case periodHours > 0:
			rate = compensation / periodHours
		case compensation > 0:
			// Paid with zero logged hours; flagged, not computed.
			rate = -1
		}

		summaries = append(summaries, domain.CollaboratorSummary{
			Collaborator:        name,
			TotalCompensation:   compensation,
			TotalPeriodHours:    periodHours,
			EffectiveHourlyRate: rate,
			FilteredHours:       float64(filteredMinutes) / 60,
			ClientsServed:       len(clients),
		})
	}
	return summaries
}
