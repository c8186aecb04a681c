package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"media_tracker/internal/config"
	"media_tracker/internal/service"
)

// Handler bundles the HTTP endpoints over the application services.
type Handler struct {
	media    *service.MediaService
	episodes *service.EpisodeService
	youtube  *service.YouTubeService
	logger   *slog.Logger
}

func NewHandler(
	media *service.MediaService,
	episodes *service.EpisodeService,
	youtube *service.YouTubeService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		media:    media,
		episodes: episodes,
		youtube:  youtube,
		logger:   logger.With("component", "server"),
	}
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func New(cfg config.HTTPConfig, h *Handler, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	h.RegisterRoutes(engine)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger.With("component", "server"),
	}
}

func (s *Server) Run() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
