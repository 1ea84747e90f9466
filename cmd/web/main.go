package main

import (
	"fmt"
	"os"

	"github.com/Sabinoze00/logbook-aziendale/pkg/server"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/config"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/dashboard"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/overrides"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/sheets"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the logbook dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "logbook.yaml",
		"Path to the application config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	raw, err := sheets.LoadWorkbook(cfg.WorkbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	logger.Info().
		Str("workbook", cfg.WorkbookPath).
		Int("records", len(raw.Logbook)).
		Msg("workbook loaded")

	store := overrides.NewStore(cfg.OverridesPath)
	svc, err := dashboard.NewService(raw, store, cfg.SimilarityThreshold)
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: svc,
			Overrides: store,
		},
	})

	logger.Info().Msgf("starting server on %s", cfg.Addr)
	return api.Start()
}
