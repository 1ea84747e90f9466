package logbook

import "github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"

// Filter returns the records matching the criteria: date within
// [Start, End] inclusive, and membership in every non-empty dimension
// set. Dimensions are ANDed together; within a dimension any member
// matches.
func Filter(records []domain.WorkRecord, c domain.FilterCriteria) []domain.WorkRecord {
	collaborators := asSet(c.Collaborators)
	departments := asSet(c.Departments)
	macroActivities := asSet(c.MacroActivities)
	clients := asSet(c.Clients)

	var out []domain.WorkRecord
	for _, r := range records {
		if r.Date.Before(c.Start) || r.Date.After(c.End) {
			continue
		}
		if !allows(collaborators, r.Collaborator) {
			continue
		}
		if !allows(departments, r.Department) {
			continue
		}
		if !allows(macroActivities, r.MacroActivity) {
			continue
		}
		if !allows(clients, r.Client) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// asSet returns nil for an empty slice; nil means "no restriction".
func asSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func allows(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}
