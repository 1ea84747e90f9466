package sheets

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

// Sheet names expected in the workbook. Mappa is optional.
const (
	SheetLogbook      = "Logbook"
	SheetRevenue      = "Clienti"
	SheetCompensation = "Compensi collaboratori"
	SheetRemap        = "Mappa"
)

// LoadWorkbook reads the dashboard workbook from an .xlsx file. The
// three main sheets are required; a missing Mappa sheet yields the
// built-in default remap.
func LoadWorkbook(path string) (*domain.RawDataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	logbookRows, err := f.GetRows(SheetLogbook)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetLogbook, err)
	}
	revenueRows, err := f.GetRows(SheetRevenue)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetRevenue, err)
	}
	compensationRows, err := f.GetRows(SheetCompensation)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetCompensation, err)
	}
	remapRows, err := f.GetRows(SheetRemap)
	if err != nil {
		remapRows = nil
	}

	logbook := ParseLogbook(logbookRows)
	if logbook == nil {
		// A header-only sheet is an empty dataset, not a missing one.
		logbook = []domain.RawRecord{}
	}

	return &domain.RawDataset{
		Logbook:      logbook,
		Revenue:      ParseRevenue(revenueRows),
		Compensation: ParseCompensation(compensationRows),
		Remap:        ParseRemap(remapRows),
	}, nil
}
