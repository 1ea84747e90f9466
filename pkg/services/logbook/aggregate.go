package logbook

import (
	"sort"
	"strings"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

// HoursByCollaborator sums worked hours per collaborator.
func HoursByCollaborator(records []domain.WorkRecord) []domain.HoursByEntity {
	return hoursBy(records, func(r domain.WorkRecord) string { return r.Collaborator })
}

// HoursByClient sums worked hours per client.
func HoursByClient(records []domain.WorkRecord) []domain.HoursByEntity {
	return hoursBy(records, func(r domain.WorkRecord) string { return r.Client })
}

// HoursByDepartment sums worked hours per department.
func HoursByDepartment(records []domain.WorkRecord) []domain.HoursByEntity {
	return hoursBy(records, func(r domain.WorkRecord) string { return r.Department })
}

// HoursByMacroActivity sums worked hours per macro activity.
func HoursByMacroActivity(records []domain.WorkRecord) []domain.HoursByEntity {
	return hoursBy(records, func(r domain.WorkRecord) string { return r.MacroActivity })
}

// HoursByMicroActivity sums worked hours per micro activity. Records
// with a blank micro activity are not a reportable category and are
// skipped.
func HoursByMicroActivity(records []domain.WorkRecord) []domain.HoursByEntity {
	kept := make([]domain.WorkRecord, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.MicroActivity) == "" {
			continue
		}
		kept = append(kept, r)
	}
	return hoursBy(kept, func(r domain.WorkRecord) string { return r.MicroActivity })
}

// hoursBy groups records by one dimension summing minutes/60, sorted
// by hours descending with name ascending as the tie rule so that
// identical inputs always produce identical output.
func hoursBy(records []domain.WorkRecord, key func(domain.WorkRecord) string) []domain.HoursByEntity {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[key(r)] += float64(r.Minutes) / 60
	}

	out := make([]domain.HoursByEntity, 0, len(totals))
	for name, hours := range totals {
		out = append(out, domain.HoursByEntity{Name: name, Hours: hours})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Distinct returns the sorted distinct non-empty values of one record
// field, for populating filter choices.
func Distinct(records []domain.WorkRecord, key func(domain.WorkRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := key(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
