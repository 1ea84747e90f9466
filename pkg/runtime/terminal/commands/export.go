package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sabinoze00/logbook-aziendale/pkg/services/dashboard"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/overrides"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/sheets"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/textmatch"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	workbookPath  string
	overridesPath string
	threshold     float64
	outPath       string
	filters       filterFlags
}

func NewExportCmd() *cobra.Command {
	ec := &ExportCmd{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the monthly revenue table to CSV or XLSX",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.workbookPath, "workbook", "", "Path to the logbook workbook (.xlsx)")
	cmd.Flags().StringVar(&ec.overridesPath, "overrides", "mapping-overrides.json", "Path to the mapping overrides file")
	cmd.Flags().Float64Var(&ec.threshold, "threshold", textmatch.DefaultThreshold, "Similarity threshold for name grouping (0-100)")
	cmd.Flags().StringVar(&ec.outPath, "out", "fatturato_mensile.csv", "Output file (.csv or .xlsx)")
	cmd.Flags().StringVar(&ec.filters.start, "start", "", "Start date (YYYY-MM-DD, defaults to Jan 1 of the current year)")
	cmd.Flags().StringVar(&ec.filters.end, "end", "", "End date (YYYY-MM-DD, defaults to Dec 31 of the current year)")
	cmd.Flags().StringSliceVar(&ec.filters.collaborators, "collaborator", nil, "Limit to the given collaborators")
	cmd.Flags().StringSliceVar(&ec.filters.departments, "department", nil, "Limit to the given departments")
	cmd.Flags().StringSliceVar(&ec.filters.macroActivities, "activity", nil, "Limit to the given macro activities")
	cmd.Flags().StringSliceVar(&ec.filters.clients, "client", nil, "Limit to the given clients")

	_ = cmd.MarkFlagRequired("workbook")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	criteria, err := ec.filters.criteria()
	if err != nil {
		return err
	}

	raw, err := sheets.LoadWorkbook(ec.workbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	svc, err := dashboard.NewService(raw, overrides.NewStore(ec.overridesPath), ec.threshold)
	if err != nil {
		return err
	}

	matrix, err := svc.MonthlyRevenue(ctx, criteria)
	if err != nil {
		return fmt.Errorf("failed to build monthly revenue: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(ec.outPath), ".xlsx") {
		f, err := sheets.MonthlyRevenueXLSX(matrix)
		if err != nil {
			return fmt.Errorf("failed to build xlsx: %w", err)
		}
		if err := f.SaveAs(ec.outPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", ec.outPath, err)
		}
		return nil
	}

	out, err := os.Create(ec.outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", ec.outPath, err)
	}
	defer out.Close()

	return sheets.WriteMonthlyRevenueCSV(out, matrix)
}
