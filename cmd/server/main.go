package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/server"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "bmi-server",
	Short: "BMI tracking API",
	Long: `bmi-server serves the BMI tracking API: accounts, BMI records,
statistics and training programs.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDatabase loads configuration, connects and migrates.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.SlogLevel())

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("database ready", "driver", cfg.DBDriver)

	return cfg, db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	slog.Info("migrations applied")
	return database.Close(db)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout, cfg.SlogLevel()),
		dbLogHandler,
	)))

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, db, server.Options{AccessLog: true})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case <-quit:
		slog.Info("shutting down server...")
	case err = <-listenErr:
		slog.Error("server failed to start", "error", err)
	}

	if serr := app.Shutdown(); serr != nil {
		slog.Error("server shutdown error", "error", serr)
	}

	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	// Close database connections
	if cerr := database.Close(db); cerr != nil {
		slog.Error("database close error", "error", cerr)
	}

	slog.Info("server stopped")
	return err
}
