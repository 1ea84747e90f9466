package logbook

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/textmatch"
)

// Date layouts tried in order. The day-first form comes first because
// it is the dominant sheet convention and generic parsing is ambiguous
// for it. time.Parse rejects day overflow ("31/02/..."), which is
// exactly the drop behavior we want.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
}

// ParseDate parses a logbook date string. The second return value is
// false when no layout matches or the day overflows the month.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeRecords turns raw logbook rows into canonical WorkRecords.
//
// Rows whose date cannot be parsed are dropped and counted; they never
// reach downstream stages. The five name categories are canonicalized
// independently over the full surviving record set, one goroutine per
// category, and every record field is rewritten to its canonical
// value. Output order is the input order of surviving rows.
func NormalizeRecords(
	ctx context.Context,
	raw []domain.RawRecord,
	overrides domain.CategoryOverrides,
	threshold float64,
) ([]domain.WorkRecord, int) {
	records := make([]domain.WorkRecord, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		date, ok := ParseDate(r.Date)
		if !ok {
			dropped++
			continue
		}
		records = append(records, domain.WorkRecord{
			Collaborator:  r.Collaborator,
			Date:          date,
			Department:    r.Department,
			MacroActivity: r.MacroActivity,
			MicroActivity: r.MicroActivity,
			Client:        r.Client,
			Note:          r.Note,
			Minutes:       r.Minutes,
			MonthLabel:    domain.MonthLabelFor(date),
		})
	}

	if dropped > 0 {
		zerolog.Ctx(ctx).Info().
			Int("dropped", dropped).
			Int("kept", len(records)).
			Msg("discarded logbook rows with unparseable dates")
	}

	categories := []struct {
		labels    []string
		overrides map[string]string
		mapping   map[string]string
		apply     func(*domain.WorkRecord, map[string]string)
	}{
		{
			labels:    collect(records, func(r domain.WorkRecord) string { return r.Client }),
			overrides: overrides.Clients,
			apply:     func(r *domain.WorkRecord, m map[string]string) { r.Client = m[r.Client] },
		},
		{
			labels:    collect(records, func(r domain.WorkRecord) string { return r.Collaborator }),
			overrides: overrides.Collaborators,
			apply:     func(r *domain.WorkRecord, m map[string]string) { r.Collaborator = m[r.Collaborator] },
		},
		{
			labels:    collect(records, func(r domain.WorkRecord) string { return r.Department }),
			overrides: overrides.Departments,
			apply:     func(r *domain.WorkRecord, m map[string]string) { r.Department = m[r.Department] },
		},
		{
			labels:    collect(records, func(r domain.WorkRecord) string { return r.MacroActivity }),
			overrides: overrides.MacroActivities,
			apply:     func(r *domain.WorkRecord, m map[string]string) { r.MacroActivity = m[r.MacroActivity] },
		},
		{
			labels:    collect(records, func(r domain.WorkRecord) string { return r.MicroActivity }),
			overrides: overrides.MicroActivities,
			apply:     func(r *domain.WorkRecord, m map[string]string) { r.MicroActivity = m[r.MicroActivity] },
		},
	}

	// Each category clusters independently; the only synchronization is
	// the join before fields are rewritten.
	g, _ := errgroup.WithContext(ctx)
	for i := range categories {
		i := i
		g.Go(func() error {
			categories[i].mapping = textmatch.Canonicalize(
				categories[i].labels, threshold, categories[i].overrides)
			return nil
		})
	}
	_ = g.Wait()

	for i := range records {
		for _, c := range categories {
			c.apply(&records[i], c.mapping)
		}
	}

	return records, dropped
}

func collect(records []domain.WorkRecord, key func(domain.WorkRecord) string) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = key(r)
	}
	return labels
}
