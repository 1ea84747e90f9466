package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

func deptRecord(collaborator, department, client string, day, minutes int) domain.WorkRecord {
	r := janRecord(collaborator, client, day, minutes)
	r.Department = department
	return r
}

func TestDepartmentSummaries(t *testing.T) {
	t.Run("revenue splits proportionally to hours on the client", func(t *testing.T) {
		all := []domain.WorkRecord{
			deptRecord("Mario Rossi", "Marketing", "ACME Srl", 5, 30*60),
			deptRecord("Giulia Verdi", "Sviluppo", "ACME Srl", 6, 10*60),
		}
		rev := domain.RevenueTable{"ACME Srl": {"Gennaio": "1.000,00"}}

		summaries := DepartmentSummaries(all, all, january(), domain.CompensationTable{}, rev, domain.ClientRemap{})

		require.Len(t, summaries, 2)
		assert.Equal(t, "Marketing", summaries[0].Department)
		assert.InDelta(t, 750.0, summaries[0].TotalRevenue, 1e-9)
		assert.Equal(t, "Sviluppo", summaries[1].Department)
		assert.InDelta(t, 250.0, summaries[1].TotalRevenue, 1e-9)
	})

	t.Run("allocations of one client partition its direct revenue", func(t *testing.T) {
		all := []domain.WorkRecord{
			deptRecord("Mario Rossi", "Marketing", "ACME Srl", 5, 137),
			deptRecord("Giulia Verdi", "Sviluppo", "ACME Srl", 6, 412),
			deptRecord("Luca Bianchi", "Grafica", "ACME Srl", 7, 59),
			deptRecord("Mario Rossi", "Marketing", "Beta Spa", 8, 240),
		}
		rev := domain.RevenueTable{
			"ACME Srl": {"Gennaio": "1.234,56"},
			"Beta Spa": {"Gennaio": "300"},
		}

		departments := DepartmentSummaries(all, all, january(), domain.CompensationTable{}, rev, domain.ClientRemap{})
		clients := ClientSummaries(all, all, january(), domain.CompensationTable{}, rev, domain.ClientRemap{})

		var acmeDirect float64
		for _, c := range clients {
			if c.Client == "ACME Srl" {
				acmeDirect = c.TotalRevenue
			}
		}
		require.Equal(t, 1234.56, acmeDirect)

		// Rebuild ACME's allocation over the departments that touched it.
		acmeMinutes := map[string]int{"Marketing": 137, "Sviluppo": 412, "Grafica": 59}
		totalMinutes := 137 + 412 + 59
		allocated := 0.0
		for _, d := range departments {
			share := float64(acmeMinutes[d.Department]) / float64(totalMinutes) * acmeDirect
			beta := 0.0
			if d.Department == "Marketing" {
				beta = 300
			}
			assert.InDelta(t, share+beta, d.TotalRevenue, 1e-6, d.Department)
			allocated += d.TotalRevenue - beta
		}
		assert.InDelta(t, acmeDirect, allocated, 1e-6)
	})

	t.Run("cost charges each collaborator at their own rate", func(t *testing.T) {
		all := []domain.WorkRecord{
			deptRecord("Mario Rossi", "Marketing", "ACME Srl", 5, 30*60),
			deptRecord("Giulia Verdi", "Marketing", "ACME Srl", 6, 10*60),
		}
		comp := domain.CompensationTable{
			"Mario Rossi":  {"Gennaio": 600}, // 20 euro/h over 30 h
			"Giulia Verdi": {"Gennaio": 100}, // 10 euro/h over 10 h
		}

		summaries := DepartmentSummaries(all, all, january(), comp, domain.RevenueTable{}, domain.ClientRemap{})

		require.Len(t, summaries, 1)
		assert.InDelta(t, 700.0, summaries[0].TotalCost, 1e-9)
		assert.Equal(t, 2, summaries[0].Collaborators)
	})

	t.Run("counts distinct clients and macro activities", func(t *testing.T) {
		a := deptRecord("Mario Rossi", "Marketing", "ACME Srl", 5, 60)
		a.MacroActivity = "Campagne"
		b := deptRecord("Mario Rossi", "Marketing", "Beta Spa", 6, 60)
		b.MacroActivity = "Campagne"
		all := []domain.WorkRecord{a, b}

		summaries := DepartmentSummaries(all, all, january(), domain.CompensationTable{}, domain.RevenueTable{}, domain.ClientRemap{})

		require.Len(t, summaries, 1)
		assert.Equal(t, 2, summaries[0].ClientsServed)
		assert.Equal(t, 1, summaries[0].MacroActivities)
	})
}

func TestClientSummaries(t *testing.T) {
	t.Run("zero revenue keeps percentage at zero and margin negative", func(t *testing.T) {
		all := []domain.WorkRecord{janRecord("Mario Rossi", "Acme", 5, 10*60)}
		comp := domain.CompensationTable{"Mario Rossi": {"Gennaio": 200}}

		summaries := ClientSummaries(all, all, january(), comp, domain.RevenueTable{}, domain.ClientRemap{})

		require.Len(t, summaries, 1)
		s := summaries[0]
		assert.Equal(t, 0.0, s.TotalRevenue)
		assert.Equal(t, 0.0, s.MarginPercentage)
		assert.Equal(t, -s.TotalCost, s.Margin)
		assert.InDelta(t, 200.0, s.TotalCost, 1e-9)
	})

	t.Run("period hours ignore the entity filters", func(t *testing.T) {
		all := []domain.WorkRecord{
			janRecord("Mario Rossi", "ACME Srl", 5, 60),
			janRecord("Giulia Verdi", "ACME Srl", 6, 120),
		}
		criteria := january()
		criteria.Collaborators = []string{"Mario Rossi"}
		filtered := []domain.WorkRecord{all[0]}

		summaries := ClientSummaries(filtered, all, criteria, domain.CompensationTable{}, domain.RevenueTable{}, domain.ClientRemap{})

		require.Len(t, summaries, 1)
		assert.Equal(t, 3.0, summaries[0].TotalPeriodHours)
		assert.Equal(t, 1.0, summaries[0].FilteredHours)
	})

	t.Run("revenue is the direct selected-months lookup", func(t *testing.T) {
		r := janRecord("Mario Rossi", "ACME Srl", 5, 60)
		feb := domain.WorkRecord{
			Collaborator: "Mario Rossi",
			Client:       "ACME Srl",
			Date:         time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
			Minutes:      60,
			MonthLabel:   "Febbraio",
		}
		all := []domain.WorkRecord{r, feb}
		criteria := january()
		criteria.End = time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)

		rev := domain.RevenueTable{"ACME Srl": {"Gennaio": "100", "Febbraio": "200", "Marzo": "999"}}

		summaries := ClientSummaries(all, all, criteria, domain.CompensationTable{}, rev, domain.ClientRemap{})

		require.Len(t, summaries, 1)
		assert.Equal(t, 300.0, summaries[0].TotalRevenue)
	})
}
