package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/walled99/Learn-Deutsch/internal/config"
	"github.com/walled99/Learn-Deutsch/internal/service/extraction"
	"github.com/walled99/Learn-Deutsch/internal/transport/middleware"
	"github.com/walled99/Learn-Deutsch/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// extraction service behind the HTTP API and serves until ctx is done,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("model", cfg.Gemini.Model),
		slog.Bool("api_key_configured", cfg.Gemini.HasAPIKey()),
	)
	if !cfg.Gemini.HasAPIKey() {
		logger.Warn("GEMINI_API_KEY is not set; every extraction will fail until it is configured")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(clockwork.NewRealClock(), cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, reg, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires the components into the HTTP router. limiter may be nil.
func NewHandler(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry, limiter *middleware.RateLimiter) http.Handler {
	comps := NewComponents(cfg, logger, extraction.NewMetrics(reg))

	var extractLimit middleware.Middleware
	if limiter != nil && cfg.RateLimit.ExtractPerMinute > 0 {
		extractLimit = limiter.Limit(cfg.RateLimit.ExtractPerMinute)
	}

	return rest.NewRouter(rest.Routes{
		Health:       rest.NewHealthHandler(comps.Model, comps.Connectivity, BuildVersion()),
		Extraction:   rest.NewExtractionHandler(comps.Extraction, cfg.Server.MaxUploadBytes, cfg.Server.UploadDir, logger),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		ExtractLimit: extractLimit,
	},
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
