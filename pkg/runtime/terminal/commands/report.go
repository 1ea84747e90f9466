package commands

import (
	"fmt"
	"os"

	"github.com/Sabinoze00/logbook-aziendale/pkg/runtime/terminal/export"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/dashboard"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/overrides"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/sheets"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/textmatch"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	workbookPath  string
	overridesPath string
	threshold     float64
	filters       filterFlags
	reporter      *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard report for a workbook",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.workbookPath, "workbook", "", "Path to the logbook workbook (.xlsx)")
	cmd.Flags().StringVar(&rc.overridesPath, "overrides", "mapping-overrides.json", "Path to the mapping overrides file")
	cmd.Flags().Float64Var(&rc.threshold, "threshold", textmatch.DefaultThreshold, "Similarity threshold for name grouping (0-100)")
	cmd.Flags().StringVar(&rc.filters.start, "start", "", "Start date (YYYY-MM-DD, defaults to Jan 1 of the current year)")
	cmd.Flags().StringVar(&rc.filters.end, "end", "", "End date (YYYY-MM-DD, defaults to Dec 31 of the current year)")
	cmd.Flags().StringSliceVar(&rc.filters.collaborators, "collaborator", nil, "Limit to the given collaborators")
	cmd.Flags().StringSliceVar(&rc.filters.departments, "department", nil, "Limit to the given departments")
	cmd.Flags().StringSliceVar(&rc.filters.macroActivities, "activity", nil, "Limit to the given macro activities")
	cmd.Flags().StringSliceVar(&rc.filters.clients, "client", nil, "Limit to the given clients")

	_ = cmd.MarkFlagRequired("workbook")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	criteria, err := rc.filters.criteria()
	if err != nil {
		return err
	}

	raw, err := sheets.LoadWorkbook(rc.workbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	svc, err := dashboard.NewService(raw, overrides.NewStore(rc.overridesPath), rc.threshold)
	if err != nil {
		return err
	}

	d, err := svc.Dashboard(ctx, criteria)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	return rc.reporter.Handle(d, criteria)
}
