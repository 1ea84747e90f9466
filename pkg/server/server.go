package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	handlers "github.com/Sabinoze00/logbook-aziendale/pkg/handlers/dashboard"
	logbookmiddleware "github.com/Sabinoze00/logbook-aziendale/pkg/server/middleware"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/dashboard"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Dashboard *dashboard.Service
	Overrides handlers.OverridesStore
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router with the standard middleware
// chain; split out so tests can serve it directly.
func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	handler := handlers.NewHandler(config.Dependencies.Dashboard, config.Dependencies.Overrides)

	router := chi.NewRouter()

	router.Use(logbookmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.AllowAll().Handler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", handler.GetDashboard)
		r.Get("/filters", handler.GetFilterOptions)
		r.Get("/revenue/monthly", handler.GetMonthlyRevenue)
		r.Get("/mappings", handler.GetMappings)
		r.Put("/mappings", handler.PutMappings)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
