package report

import "github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"

// MonthlyRevenue builds the client-by-month revenue matrix for the
// filtered set: one row per client (sorted by name), one column per
// month label present in the filtered set (calendar order), plus a
// synthetic totals row per month and a grand total. Absent or
// unparsable cells are zero.
func MonthlyRevenue(
	filtered []domain.WorkRecord,
	rev domain.RevenueTable,
	remap domain.ClientRemap,
) domain.MonthlyRevenueMatrix {
	months := selectedMonths(filtered)
	clients := distinctSorted(filtered, func(r domain.WorkRecord) string { return r.Client })

	matrix := domain.MonthlyRevenueMatrix{
		Months: months,
		Rows:   make([]domain.MonthlyRevenueRow, 0, len(clients)),
		Totals: make(map[string]float64, len(months)),
	}

	for _, client := range clients {
		row := domain.MonthlyRevenueRow{
			Client:  client,
			Monthly: make(map[string]float64, len(months)),
		}
		byMonth := rev[remap.Resolve(client)]
		for _, month := range months {
			amount := ParseEuAmount(byMonth[month])
			row.Monthly[month] = amount
			row.Total += amount
			matrix.Totals[month] += amount
			matrix.GrandTotal += amount
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix
}
