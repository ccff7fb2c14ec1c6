package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/data/tmdb"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	config, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production defaults.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("tmdb_language", config.TMDB.Language),
	)

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, config.Database, database.MigrateUp); err != nil {
			logger.Error("Failed to run migrations", zap.Error(err))
			return err
		}
		logger.Info("Database migrations applied")
	}

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	gateway, err := tmdb.New(config.TMDB.APIKey, config.TMDB.BaseURL, config.TMDB.Language,
		tmdb.WithTimeout(config.TMDB.Timeout),
		tmdb.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("tmdb client: %w", err)
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, gateway, config, logger)

	return APIServer(ctx, app.Router, config.App.Port, logger)
}
