package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/panjuncai/Sola-sub000/internal/config"
	"github.com/panjuncai/Sola-sub000/internal/service/cloze"
	"github.com/panjuncai/Sola-sub000/internal/tokenize"
	"github.com/panjuncai/Sola-sub000/internal/transport/middleware"
	"github.com/panjuncai/Sola-sub000/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// HTTP handler and serves until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("default_language", cfg.Cloze.DefaultLanguage),
	)

	handler, cleanup, err := NewHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler wires services, handlers and middleware into one
// http.Handler. The returned cleanup func releases background resources.
func NewHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	tok := tokenize.NewDefaultRegistry(logger)

	clozeSvc, err := cloze.NewService(logger, tok, cfg.Cloze.PracticeConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("cloze service: %w", err)
	}

	mux := http.NewServeMux()
	rest.NewHealthHandler(BuildVersion()).Register(mux)
	rest.NewClozeHandler(clozeSvc, logger, cfg.Server.MaxBodyBytes).Register(mux)

	cleanup := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
		cleanup = rl.Stop
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Language(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.RateLimit.Enabled, limit),
	)

	return chain(mux), cleanup, nil
}
