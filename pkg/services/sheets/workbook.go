// Package sheets parses the four workbook layouts the dashboard is fed
// with (Logbook, Clienti, Compensi collaboratori, Mappa) into the
// domain tables. Columns are resolved by header name, so sheet column
// order does not matter; headers nobody recognizes are ignored and the
// corresponding fields simply stay absent.
package sheets

import (
	"strconv"
	"strings"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/report"
)

// ParseLogbook maps Logbook sheet rows to raw records. Empty rows are
// skipped; an unparsable minutes cell counts as zero.
func ParseLogbook(rows [][]string) []domain.RawRecord {
	if len(rows) < 2 {
		return nil
	}
	headers := rows[0]

	var out []domain.RawRecord
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		var rec domain.RawRecord
		for i, header := range headers {
			value := cell(row, i)
			switch strings.ToLower(strings.TrimSpace(header)) {
			case "nome":
				rec.Collaborator = value
			case "data":
				rec.Date = value
			case "reparto1", "reparto":
				rec.Department = value
			case "macro attività":
				rec.MacroActivity = value
			case "micro attività":
				rec.MicroActivity = value
			case "cliente":
				rec.Client = value
			case "note":
				rec.Note = value
			case "minuti impiegati":
				if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
					rec.Minutes = n
				}
			}
		}
		out = append(out, rec)
	}
	return out
}

// ParseRevenue maps Clienti sheet rows to the revenue table. When an
// "Actual" column exists only rows marked Actual are kept (the sheet
// also carries budget scenarios). Every column other than the client
// name and the Actual marker is a month bucket, kept as the raw string
// for the report engine to parse.
func ParseRevenue(rows [][]string) domain.RevenueTable {
	table := domain.RevenueTable{}
	if len(rows) < 2 {
		return table
	}
	headers := rows[0]

	actualIdx := -1
	clientIdx := -1
	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "actual":
			actualIdx = i
		case "cliente":
			clientIdx = i
		}
	}
	if clientIdx == -1 {
		return table
	}

	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		if actualIdx != -1 && cell(row, actualIdx) != "Actual" {
			continue
		}
		client := cell(row, clientIdx)
		if client == "" {
			continue
		}
		months := make(map[string]string)
		for i, header := range headers {
			if i == clientIdx || i == actualIdx {
				continue
			}
			months[header] = cell(row, i)
		}
		table[client] = months
	}
	return table
}

// ParseCompensation maps Compensi collaboratori sheet rows to the
// compensation table. The name header appears both spelled correctly
// and with the long-standing "collaboaratore" typo in production
// sheets; both are accepted. Month cells are EU-format amounts parsed
// to numbers, empty cells are zero.
func ParseCompensation(rows [][]string) domain.CompensationTable {
	table := domain.CompensationTable{}
	if len(rows) < 2 {
		return table
	}
	headers := rows[0]

	nameIdx := -1
	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "collaboratore", "collaboaratore":
			nameIdx = i
		}
	}
	if nameIdx == -1 {
		return table
	}

	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		name := cell(row, nameIdx)
		if name == "" {
			continue
		}
		months := make(map[string]float64)
		for i, header := range headers {
			if i == nameIdx {
				continue
			}
			months[header] = report.ParseEuAmount(cell(row, i))
		}
		table[name] = months
	}
	return table
}

// ParseRemap maps Mappa sheet rows to the client remap table, keyed by
// the logbook name ("cliente map" column) with the billing name
// ("cliente" column) as value. A missing or empty sheet falls back to
// the built-in default list.
func ParseRemap(rows [][]string) domain.ClientRemap {
	if len(rows) < 2 {
		return domain.DefaultClientRemap()
	}
	headers := rows[0]

	billingIdx := -1
	logbookIdx := -1
	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "cliente":
			billingIdx = i
		case "cliente map":
			logbookIdx = i
		}
	}
	if billingIdx == -1 || logbookIdx == -1 {
		return domain.DefaultClientRemap()
	}

	remap := domain.ClientRemap{}
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		billing := cell(row, billingIdx)
		logbook := cell(row, logbookIdx)
		if billing == "" || logbook == "" {
			continue
		}
		remap[logbook] = billing
	}
	return remap
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
