package sheets

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

// WriteMonthlyRevenueCSV writes the matrix in the dashboard's export
// layout: one row per client, one column per month, a Totale column
// and a final TOTALE row with the per-month sums.
func WriteMonthlyRevenueCSV(w io.Writer, m domain.MonthlyRevenueMatrix) error {
	cw := csv.NewWriter(w)

	header := append([]string{"Cliente"}, m.Months...)
	header = append(header, "Totale")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range m.Rows {
		record := make([]string, 0, len(m.Months)+2)
		record = append(record, row.Client)
		for _, month := range m.Months {
			record = append(record, fmt.Sprintf("%.2f", row.Monthly[month]))
		}
		record = append(record, fmt.Sprintf("%.2f", row.Total))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	totals := make([]string, 0, len(m.Months)+2)
	totals = append(totals, "TOTALE")
	for _, month := range m.Months {
		totals = append(totals, fmt.Sprintf("%.2f", m.Totals[month]))
	}
	totals = append(totals, fmt.Sprintf("%.2f", m.GrandTotal))
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// MonthlyRevenueXLSX renders the matrix as a single-sheet workbook.
func MonthlyRevenueXLSX(m domain.MonthlyRevenueMatrix) (*excelize.File, error) {
	const sheet = "Fatturato mensile"

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Cliente"}
	for _, month := range m.Months {
		header = append(header, month)
	}
	header = append(header, "Totale")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range m.Rows {
		values := []interface{}{row.Client}
		for _, month := range m.Months {
			values = append(values, row.Monthly[month])
		}
		values = append(values, row.Total)
		axis := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	totals := []interface{}{"TOTALE"}
	for _, month := range m.Months {
		totals = append(totals, m.Totals[month])
	}
	totals = append(totals, m.GrandTotal)
	axis := fmt.Sprintf("A%d", len(m.Rows)+2)
	if err := f.SetSheetRow(sheet, axis, &totals); err != nil {
		return nil, fmt.Errorf("write totals row: %w", err)
	}

	return f, nil
}
