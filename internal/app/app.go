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

	"github.com/heartmarshall/itemshelf-backend/internal/adapter/memory"
	"github.com/heartmarshall/itemshelf-backend/internal/config"
	"github.com/heartmarshall/itemshelf-backend/internal/domain"
	"github.com/heartmarshall/itemshelf-backend/internal/service/collection"
	"github.com/heartmarshall/itemshelf-backend/internal/service/item"
	"github.com/heartmarshall/itemshelf-backend/internal/service/stats"
	"github.com/heartmarshall/itemshelf-backend/internal/transport/middleware"
	"github.com/heartmarshall/itemshelf-backend/internal/transport/rest"
)

// App holds the wired store, services and HTTP handler.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *memory.Store
	handler http.Handler
	limiter *middleware.RateLimiter
}

// New builds the store, loads the seed dataset and wires services and routes.
// Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := memory.New()

	seed, err := memory.LoadSeed(cfg.App.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	if err := store.Load(ctx, seed); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}
	logger.Info("seed loaded",
		slog.Int("items", len(seed.Items)),
		slog.Int("collections", len(seed.Collections)),
		slog.String("source", seedSource(cfg.App.SeedPath)),
	)

	itemRepo := memory.NewItemRepo(store)
	collectionRepo := memory.NewCollectionRepo(store)
	tx := memory.NewTxManager(store)

	itemSvc := item.NewService(logger, itemRepo, tx)
	collectionSvc := collection.NewService(logger, collectionRepo, itemRepo, tx)
	statsSvc := stats.NewService(logger, itemRepo, collectionRepo, tx, Version)

	exposeDetail := domainEnv(cfg).IsDevelopment()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}

	h := handlers{
		health:      rest.NewHealthHandler(store, Version, cfg.App.Env, cfg.Server.BasePath),
		items:       rest.NewItemHandler(itemSvc, logger, exposeDetail),
		collections: rest.NewCollectionHandler(collectionSvc, logger, exposeDetail),
		stats:       rest.NewStatsHandler(statsSvc, logger, exposeDetail),
	}

	return &App{
		cfg:     cfg,
		log:     logger,
		store:   store,
		handler: newRouter(cfg, logger, h, limiter),
		limiter: limiter,
	}, nil
}

// Handler returns the root HTTP handler with all middleware applied.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("base_path", a.cfg.Server.BasePath),
			slog.String("environment", a.cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("http server stopped")
	return nil
}

// Run is the application entry point. It initializes the logger, wires the
// application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

func domainEnv(cfg *config.Config) domain.Environment {
	return domain.Environment(cfg.App.Env)
}

func seedSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
