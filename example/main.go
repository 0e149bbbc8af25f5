// Command example serves localized messages over HTTP.
//
//	ADDRESS=:8080 LOCALIZE_SUPPORTED=en,fr go run ./example
//	curl -H 'Accept-Language: fr-CH, de;q=0.8' localhost:8080/greeting
//
// Set REDIS_URL to share resolution results between instances and
// SENTRY_DSN to forward warnings and errors to Sentry.
package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/logger"
)

//go:embed locales
var locales embed.FS

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor(), logger.LanguagesExtractor())
	defer sentry.Flush(2 * time.Second)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("failed to close store", slog.String("error", err.Error()))
		}
	}()

	cat, err := newCatalog(cfg, store, log)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		slog.Int("tables", len(cat.Names())),
		slog.String("specificity", cat.Specificity().String()),
	)

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           newRouter(cat, cfg.Supported, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

func newStore(ctx context.Context, cfg Config, log *slog.Logger) (catalog.Store, func() error, error) {
	if cfg.RedisURL == "" {
		return catalog.NewMemoryStore(cfg.CacheSize), func() error { return nil }, nil
	}

	store, closeFn, err := catalog.OpenRedisStore(ctx, cfg.RedisURL, catalog.WithRedisTTL(cfg.CacheTTL))
	if err != nil {
		return nil, nil, err
	}
	log.Info("using redis store")
	return store, closeFn, nil
}

func newCatalog(cfg Config, store catalog.Store, log *slog.Logger) (*catalog.Catalog, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}

	return catalog.New(
		catalog.WithYAMLDir(sub),
		catalog.WithJSONDir(sub),
		catalog.WithSpecificity(cfg.Specificity),
		catalog.WithSupported(cfg.Supported...),
		catalog.WithStore(store),
		catalog.WithLogger(log),
	)
}
