package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

func janRecord(collaborator, client string, day, minutes int) domain.WorkRecord {
	return domain.WorkRecord{
		Collaborator: collaborator,
		Client:       client,
		Date:         time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
		Minutes:      minutes,
		MonthLabel:   "Gennaio",
	}
}

func january() domain.FilterCriteria {
	return domain.FilterCriteria{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeKPI(t *testing.T) {
	t.Run("rate denominator covers all period hours of relevant collaborators", func(t *testing.T) {
		all := []domain.WorkRecord{
			janRecord("Mario Rossi", "ACME Srl", 5, 30*60),
			janRecord("Mario Rossi", "Beta Spa", 10, 30*60),
		}
		criteria := january()
		criteria.Clients = []string{"ACME Srl"}
		filtered := []domain.WorkRecord{all[0]}

		comp := domain.CompensationTable{
			"Mario Rossi": {"Gennaio": 600},
		}
		rev := domain.RevenueTable{
			"ACME Srl": {"Gennaio": "1.000,00"},
		}

		kpi := ComputeKPI(filtered, all, criteria, comp, rev, domain.ClientRemap{})

		assert.Equal(t, 30.0, kpi.TotalHours)
		// 600 euro over 60 period hours, not over the 30 filtered ones.
		assert.Equal(t, 10.0, kpi.AverageHourlyCost)
		assert.Equal(t, 300.0, kpi.FilteredHoursCost)
		assert.Equal(t, 1000.0, kpi.TotalRevenue)
		assert.Equal(t, 700.0, kpi.Margin)
		assert.Equal(t, 70.0, kpi.MarginPercentage)
	})

	t.Run("revenue only counts selected months", func(t *testing.T) {
		all := []domain.WorkRecord{janRecord("Mario Rossi", "ACME Srl", 5, 60)}
		criteria := january()

		rev := domain.RevenueTable{
			"ACME Srl": {"Gennaio": "100", "Febbraio": "999"},
		}

		kpi := ComputeKPI(all, all, criteria, domain.CompensationTable{}, rev, domain.ClientRemap{})

		assert.Equal(t, 100.0, kpi.TotalRevenue)
	})

	t.Run("revenue resolves the billing name through the remap", func(t *testing.T) {
		all := []domain.WorkRecord{janRecord("Mario Rossi", "Zeiss", 5, 60)}
		criteria := january()

		rev := domain.RevenueTable{
			"CARL ZEISS VISION ITALIA S.P.A.": {"Gennaio": "500"},
		}
		remap := domain.ClientRemap{"Zeiss": "CARL ZEISS VISION ITALIA S.P.A."}

		kpi := ComputeKPI(all, all, criteria, domain.CompensationTable{}, rev, remap)

		assert.Equal(t, 500.0, kpi.TotalRevenue)
	})

	t.Run("explicit filter sets drive compensation and revenue lookups", func(t *testing.T) {
		all := []domain.WorkRecord{
			janRecord("Mario Rossi", "ACME Srl", 5, 60),
			janRecord("Giulia Verdi", "Beta Spa", 6, 60),
		}
		criteria := january()
		criteria.Collaborators = []string{"Mario Rossi"}
		criteria.Clients = []string{"ACME Srl"}
		filtered := []domain.WorkRecord{all[0]}

		comp := domain.CompensationTable{
			"Mario Rossi":  {"Gennaio": 100},
			"Giulia Verdi": {"Gennaio": 999},
		}
		rev := domain.RevenueTable{
			"ACME Srl": {"Gennaio": "200"},
			"Beta Spa": {"Gennaio": "999"},
		}

		kpi := ComputeKPI(filtered, all, criteria, comp, rev, domain.ClientRemap{})

		// Giulia's compensation and Beta's revenue stay out.
		assert.Equal(t, 100.0, kpi.AverageHourlyCost)
		assert.Equal(t, 200.0, kpi.TotalRevenue)
	})

	t.Run("zero period hours yields zero cost, not NaN", func(t *testing.T) {
		all := []domain.WorkRecord{janRecord("Mario Rossi", "ACME Srl", 5, 0)}
		criteria := january()

		comp := domain.CompensationTable{"Mario Rossi": {"Gennaio": 1000}}

		kpi := ComputeKPI(all, all, criteria, comp, domain.RevenueTable{}, domain.ClientRemap{})

		assert.Equal(t, 0.0, kpi.AverageHourlyCost)
		assert.Equal(t, 0.0, kpi.FilteredHoursCost)
	})

	t.Run("empty filtered set yields all zeros", func(t *testing.T) {
		kpi := ComputeKPI(nil, nil, january(), domain.CompensationTable{}, domain.RevenueTable{}, domain.ClientRemap{})

		assert.Equal(t, domain.KPISummary{}, kpi)
	})

	t.Run("zero revenue reports zero percentage and negative margin", func(t *testing.T) {
		all := []domain.WorkRecord{janRecord("Mario Rossi", "ACME Srl", 5, 60)}
		criteria := january()

		comp := domain.CompensationTable{"Mario Rossi": {"Gennaio": 50}}

		kpi := ComputeKPI(all, all, criteria, comp, domain.RevenueTable{}, domain.ClientRemap{})

		assert.Equal(t, 0.0, kpi.MarginPercentage)
		assert.Equal(t, -kpi.FilteredHoursCost, kpi.Margin)
	})
}
