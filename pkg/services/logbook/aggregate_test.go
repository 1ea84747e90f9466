package logbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

func TestHoursBy(t *testing.T) {
	records := []domain.WorkRecord{
		{Collaborator: "Mario Rossi", Department: "Marketing", MicroActivity: "Setup", Minutes: 90},
		{Collaborator: "Giulia Verdi", Department: "Sviluppo", MicroActivity: "", Minutes: 120},
		{Collaborator: "Mario Rossi", Department: "Marketing", MicroActivity: "Setup", Minutes: 30},
	}

	t.Run("sums minutes into hours per entity", func(t *testing.T) {
		out := HoursByCollaborator(records)

		require.Len(t, out, 2)
		assert.Equal(t, domain.HoursByEntity{Name: "Giulia Verdi", Hours: 2}, out[0])
		assert.Equal(t, domain.HoursByEntity{Name: "Mario Rossi", Hours: 2}, out[1])
	})

	t.Run("sorted by hours descending", func(t *testing.T) {
		out := HoursByDepartment(append(records, domain.WorkRecord{Department: "Marketing", Minutes: 60}))

		require.Len(t, out, 2)
		assert.Equal(t, "Marketing", out[0].Name)
		assert.Equal(t, 3.0, out[0].Hours)
		assert.Equal(t, "Sviluppo", out[1].Name)
	})

	t.Run("ties broken by name ascending", func(t *testing.T) {
		out := HoursByCollaborator(records)

		// Both collaborators logged exactly two hours.
		assert.Equal(t, "Giulia Verdi", out[0].Name)
		assert.Equal(t, "Mario Rossi", out[1].Name)
	})

	t.Run("blank micro activities are skipped", func(t *testing.T) {
		out := HoursByMicroActivity(records)

		require.Len(t, out, 1)
		assert.Equal(t, domain.HoursByEntity{Name: "Setup", Hours: 2}, out[0])
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, HoursByClient(nil))
	})
}

func TestDistinct(t *testing.T) {
	records := []domain.WorkRecord{
		{Client: "Beta Spa"},
		{Client: "ACME Srl"},
		{Client: ""},
		{Client: "Beta Spa"},
	}

	out := Distinct(records, func(r domain.WorkRecord) string { return r.Client })

	assert.Equal(t, []string{"ACME Srl", "Beta Spa"}, out)
}
