package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/itemshelf-backend/internal/config"
	"github.com/heartmarshall/itemshelf-backend/internal/transport/middleware"
	"github.com/heartmarshall/itemshelf-backend/internal/transport/rest"
)

type handlers struct {
	health      *rest.HealthHandler
	items       *rest.ItemHandler
	collections *rest.CollectionHandler
	stats       *rest.StatsHandler
}

// newRouter registers every route under the configured base path and wraps
// the mux in the middleware chain. API routes also answer with a trailing slash.
func newRouter(cfg *config.Config, logger *slog.Logger, h handlers, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	base := cfg.Server.BasePath

	mux.HandleFunc("GET /{$}", h.health.Info)
	mux.HandleFunc("GET /health", h.health.Health)
	mux.HandleFunc("GET /live", h.health.Live)

	route := func(method, path string, fn http.HandlerFunc) {
		mux.HandleFunc(method+" "+base+path, fn)
		mux.HandleFunc(method+" "+base+path+"/{$}", fn)
	}

	route("GET", "/items", h.items.List)
	route("POST", "/items", h.items.Create)
	route("GET", "/items/{id}", h.items.Get)
	route("PUT", "/items/{id}", h.items.Update)
	route("DELETE", "/items/{id}", h.items.Delete)

	route("GET", "/collections", h.collections.List)
	route("POST", "/collections", h.collections.Create)
	route("GET", "/collections/{id}", h.collections.Get)
	route("PUT", "/collections/{id}", h.collections.Update)
	route("DELETE", "/collections/{id}", h.collections.Delete)
	route("POST", "/collections/{id}/items/{itemId}", h.collections.AddItem)
	route("DELETE", "/collections/{id}/items/{itemId}", h.collections.RemoveItem)

	route("GET", "/stats", h.stats.Get)

	mux.HandleFunc("/", h.health.NotFound)

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(logger, domainEnv(cfg).IsDevelopment()),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.CORS),
		middleware.When(limiter != nil, rateLimit),
	)(mux)
}
