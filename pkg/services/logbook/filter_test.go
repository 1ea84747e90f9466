package logbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter(t *testing.T) {
	records := []domain.WorkRecord{
		{Collaborator: "Mario Rossi", Department: "Marketing", MacroActivity: "Campagne", Client: "ACME Srl", Date: day(5), Minutes: 60},
		{Collaborator: "Giulia Verdi", Department: "Sviluppo", MacroActivity: "Sito web", Client: "ACME Srl", Date: day(10), Minutes: 90},
		{Collaborator: "Mario Rossi", Department: "Marketing", MacroActivity: "Campagne", Client: "Beta Spa", Date: day(20), Minutes: 30},
	}

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{Start: day(5), End: day(10)})

		require.Len(t, out, 2)
		assert.Equal(t, day(5), out[0].Date)
		assert.Equal(t, day(10), out[1].Date)
	})

	t.Run("records outside the range are excluded", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{Start: day(6), End: day(9)})

		assert.Empty(t, out)
	})

	t.Run("empty dimensions mean no restriction", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{Start: day(1), End: day(31)})

		assert.Len(t, out, 3)
	})

	t.Run("dimensions are ANDed together", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{
			Start:         day(1),
			End:           day(31),
			Collaborators: []string{"Mario Rossi"},
			Clients:       []string{"ACME Srl"},
		})

		require.Len(t, out, 1)
		assert.Equal(t, day(5), out[0].Date)
	})

	t.Run("within a dimension any member matches", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{
			Start:   day(1),
			End:     day(31),
			Clients: []string{"ACME Srl", "Beta Spa"},
		})

		assert.Len(t, out, 3)
	})

	t.Run("removing a restriction can only grow the result", func(t *testing.T) {
		restricted := domain.FilterCriteria{
			Start:       day(1),
			End:         day(31),
			Departments: []string{"Marketing"},
			Clients:     []string{"ACME Srl"},
		}
		relaxed := restricted
		relaxed.Clients = nil

		assert.GreaterOrEqual(t, len(Filter(records, relaxed)), len(Filter(records, restricted)))
	})

	t.Run("unknown dimension value matches nothing", func(t *testing.T) {
		out := Filter(records, domain.FilterCriteria{
			Start:         day(1),
			End:           day(31),
			Collaborators: []string{"Nessuno"},
		})

		assert.Empty(t, out)
	})
}
