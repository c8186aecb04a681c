package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"media_tracker/internal/config"
	"media_tracker/internal/publisher"
	"media_tracker/internal/server"
	"media_tracker/internal/service"
	"media_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher. The tracker works without one; entity
	// change events are simply not emitted.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	// Initialize stores
	mediaStore := postgres.NewMediaStore(db)
	mediaTranslationStore := postgres.NewMediaTranslationStore(db)
	mediaVisualizationStore := postgres.NewMediaVisualizationStore(db)
	episodeStore := postgres.NewEpisodeStore(db)
	episodeTranslationStore := postgres.NewEpisodeTranslationStore(db)
	episodeVisualizationStore := postgres.NewEpisodeVisualizationStore(db)
	channelStore := postgres.NewChannelStore(db)
	videoStore := postgres.NewVideoStore(db)
	videoVisualizationStore := postgres.NewVideoVisualizationStore(db)
	playlistStore := postgres.NewPlaylistStore(db)
	playlistVideoStore := postgres.NewPlaylistVideoStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize services
	mediaService := service.NewMediaService(
		mediaStore,
		mediaTranslationStore,
		mediaVisualizationStore,
		episodeStore,
		txManager,
		events,
		logger,
	)
	episodeService := service.NewEpisodeService(
		mediaStore,
		episodeStore,
		episodeTranslationStore,
		episodeVisualizationStore,
		txManager,
		events,
		logger,
	)
	youtubeService := service.NewYouTubeService(
		channelStore,
		videoStore,
		videoVisualizationStore,
		playlistStore,
		playlistVideoStore,
		txManager,
		events,
		logger,
	)

	handler := server.NewHandler(mediaService, episodeService, youtubeService, logger)
	srv := server.New(cfg.HTTP, handler, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
