package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"vetportal/internal/api"
	"vetportal/internal/config"
	"vetportal/internal/database"
	"vetportal/internal/logging"
	"vetportal/internal/observability"
	"vetportal/internal/repository"
	"vetportal/internal/services"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "vetportal",
		Short: "Veterinary and agricultural services portal",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	logger := logging.NewLogger(debug)
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("starting portal server", "environment", cfg.Environment)

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected", "host", cfg.DB.Host, "name", cfg.DB.Name)

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	notifier := services.NewNotificationService(repository.NewPostgresNotificationStore(pool), logger, metrics)
	handler := api.NewHandler(
		services.NewHealthReportService(repository.NewPostgresHealthReportStore(pool), notifier, logger, metrics),
		services.NewAppointmentService(repository.NewPostgresAppointmentStore(pool), notifier, logger, metrics),
		services.NewSchemeService(repository.NewPostgresSchemeStore(pool), notifier, logger, metrics),
		services.NewWildlifeService(repository.NewPostgresWildlifeStore(pool), notifier, logger, metrics),
		notifier,
		services.NewLocalizationService(repository.NewPostgresLocalizationStore(pool), logger),
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler(logger)
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(otelecho.Middleware("vetportal"))

	handler.RegisterRoutes(e)
	logger.Info("REST API handlers mounted")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(drainCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
			if err := server.Close(); err != nil {
				logger.Error("server close error", "error", err)
			}
		}
		logger.Info("server stopped gracefully")
	}

	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(debug)
			defer logger.Sync()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			pool, err := database.Connect(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer pool.Close()

			if err := database.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			logger.Info("schema applied", "database", cfg.DB.Name)
			return nil
		},
	}
}
