package logbook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/textmatch"
)

func TestParseDate(t *testing.T) {
	t.Run("accepts all supported layouts", func(t *testing.T) {
		want := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

		for _, s := range []string{"2/3/2025", "2025-3-2", "2-3-2025", "2025/3/2"} {
			got, ok := ParseDate(s)
			require.True(t, ok, "expected %q to parse", s)
			assert.Equal(t, want, got, "input %q", s)
		}
	})

	t.Run("day-first wins for padded forms", func(t *testing.T) {
		got, ok := ParseDate("05/01/2025")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects day overflow", func(t *testing.T) {
		_, ok := ParseDate("31/02/2025")
		assert.False(t, ok)
	})

	t.Run("rejects garbage and empty", func(t *testing.T) {
		for _, s := range []string{"", "gennaio 2025", "2025", "1/1/1/1"} {
			_, ok := ParseDate(s)
			assert.False(t, ok, "expected %q to be rejected", s)
		}
	})
}

func TestNormalizeRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("drops unparseable dates and counts them", func(t *testing.T) {
		raw := []domain.RawRecord{
			{Collaborator: "Mario Rossi", Date: "5/1/2025", Minutes: 60},
			{Collaborator: "Mario Rossi", Date: "31/02/2025", Minutes: 60},
			{Collaborator: "Mario Rossi", Date: "not a date", Minutes: 60},
			{Collaborator: "Mario Rossi", Date: "6/1/2025", Minutes: 30},
		}

		records, dropped := NormalizeRecords(ctx, raw, domain.EmptyOverrides(), textmatch.DefaultThreshold)

		assert.Equal(t, 2, dropped)
		require.Len(t, records, 2)
		assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, 30, records[1].Minutes)
	})

	t.Run("assigns Italian month labels", func(t *testing.T) {
		raw := []domain.RawRecord{
			{Collaborator: "Mario Rossi", Date: "5/1/2025", Minutes: 60},
			{Collaborator: "Mario Rossi", Date: "10/8/2025", Minutes: 60},
			{Collaborator: "Mario Rossi", Date: "24/12/2025", Minutes: 60},
		}

		records, _ := NormalizeRecords(ctx, raw, domain.EmptyOverrides(), textmatch.DefaultThreshold)

		require.Len(t, records, 3)
		assert.Equal(t, "Gennaio", records[0].MonthLabel)
		assert.Equal(t, "Agosto", records[1].MonthLabel)
		assert.Equal(t, "Dicembre", records[2].MonthLabel)
	})

	t.Run("canonicalizes every name category", func(t *testing.T) {
		raw := []domain.RawRecord{
			{Collaborator: "Mario Rossi", Department: "Marketing", MacroActivity: "Campagne", MicroActivity: "Setup", Client: "ACME Srl", Date: "5/1/2025", Minutes: 60},
			{Collaborator: "mario rossi", Department: "marketing", MacroActivity: "campagne", MicroActivity: "setup", Client: "acme srl", Date: "6/1/2025", Minutes: 60},
			{Collaborator: "Mario Rossi", Department: "Marketing", MacroActivity: "Campagne", MicroActivity: "Setup", Client: "ACME Srl", Date: "7/1/2025", Minutes: 60},
		}

		records, _ := NormalizeRecords(ctx, raw, domain.EmptyOverrides(), textmatch.DefaultThreshold)

		require.Len(t, records, 3)
		for _, r := range records {
			assert.Equal(t, "Mario Rossi", r.Collaborator)
			assert.Equal(t, "Marketing", r.Department)
			assert.Equal(t, "Campagne", r.MacroActivity)
			assert.Equal(t, "Setup", r.MicroActivity)
			assert.Equal(t, "ACME Srl", r.Client)
		}
	})

	t.Run("category overrides rewrite fields", func(t *testing.T) {
		raw := []domain.RawRecord{
			{Collaborator: "M. Rossi", Client: "Acme", Date: "5/1/2025", Minutes: 60},
		}
		overrides := domain.EmptyOverrides()
		overrides.Collaborators["M. Rossi"] = "Mario Rossi"
		overrides.Clients["Acme"] = "ACME Srl"

		records, _ := NormalizeRecords(ctx, raw, overrides, textmatch.DefaultThreshold)

		require.Len(t, records, 1)
		assert.Equal(t, "Mario Rossi", records[0].Collaborator)
		assert.Equal(t, "ACME Srl", records[0].Client)
	})

	t.Run("categories cluster independently", func(t *testing.T) {
		// The same text in different columns must not interfere.
		raw := []domain.RawRecord{
			{Collaborator: "Progetti", Department: "Progetti", Date: "5/1/2025", Minutes: 60},
			{Collaborator: "Progetti", Department: "progetti", Date: "6/1/2025", Minutes: 60},
		}

		records, _ := NormalizeRecords(ctx, raw, domain.EmptyOverrides(), textmatch.DefaultThreshold)

		require.Len(t, records, 2)
		assert.Equal(t, "Progetti", records[1].Collaborator)
		assert.Equal(t, "Progetti", records[1].Department)
	})

	t.Run("empty input", func(t *testing.T) {
		records, dropped := NormalizeRecords(ctx, nil, domain.EmptyOverrides(), textmatch.DefaultThreshold)

		assert.Empty(t, records)
		assert.Zero(t, dropped)
	})
}
