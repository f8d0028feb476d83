// Package api exposes the normalization pipeline and tagger over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/config"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
)

// Default timeout values.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// Server wraps the HTTP server and its router.
type Server struct {
	http *http.Server
	log  logger.Logger
}

// NewServer builds the router and HTTP server from configuration.
func NewServer(cfg *config.Config, handler *Handler, tel *telemetry.Provider, log logger.Logger) *Server {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(rateLimit(cfg.Service.RateLimit, cfg.Service.RateBurst))

	SetupRoutes(router, handler, tel)

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
			Handler:      router,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		log: log,
	}
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	s.log.Info("http server listening", logger.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
