package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/internal/wire"
	"cinema-ticketing/pkg/database"
	"cinema-ticketing/pkg/mq"
	"cinema-ticketing/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config
	config, err := utils.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.LogFile, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("version", Version),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.New(catalog.Policy{
		MaxRows:          config.Policy.MaxRows,
		MaxColumns:       config.Policy.MaxColumns,
		MaxSeatsPerOrder: config.Policy.MaxSeatsPerOrder,
	})

	repo, closeDB, err := openJournal(ctx, config.Database, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	pub, closePub := openPublisher(config.AMQP, logger)
	defer closePub()

	// Wire all dependencies
	app := wire.Wiring(cat, repo, pub, logger)

	return APIServer(ctx, app.Router, config.App.Port, logger)
}

// openJournal connects to Postgres when configured. Without DB_HOST every
// journal write is dropped.
func openJournal(ctx context.Context, config utils.DatabaseConfig, logger *zap.Logger) (*repository.Repository, func(), error) {
	if !config.Enabled() {
		logger.Info("Database not configured, journal disabled")
		return repository.NewDiscardRepository(), func() {}, nil
	}

	db, err := database.InitDB(ctx, config)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Database connected successfully", zap.String("host", config.Host), zap.String("name", config.Name))
	return repository.NewRepository(db, logger), db.Close, nil
}

// openPublisher falls back to a no-op publisher when the broker is absent or
// unreachable; events are best-effort.
func openPublisher(config utils.AMQPConfig, logger *zap.Logger) (usecase.EventPublisher, func()) {
	if !config.Enabled() {
		logger.Info("AMQP not configured, events disabled")
		return usecase.NoopPublisher{}, func() {}
	}

	pub, err := mq.NewPublisher(config.URL, config.Exchange)
	if err != nil {
		logger.Warn("Failed to connect to broker, events disabled", zap.Error(err))
		return usecase.NoopPublisher{}, func() {}
	}

	logger.Info("Broker connected", zap.String("exchange", config.Exchange))
	return pub, func() { _ = pub.Close() }
}
