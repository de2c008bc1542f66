package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// storePinger defines the minimal interface for store health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health, info and fallback endpoints.
type HealthHandler struct {
	store       storePinger
	version     string
	environment string
	basePath    string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storePinger, version, environment, basePath string) *HealthHandler {
	return &HealthHandler{store: store, version: version, environment: environment, basePath: basePath}
}

// HealthResponse is the JSON response for /health and /live.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment,omitempty"`
	Version     string `json:"version,omitempty"`
}

// InfoResponse is the JSON response for GET /.
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: formatTime(time.Now()),
	})
}

// Health pings the store and reports environment and version.
// Returns 503 if the store is unavailable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:      "OK",
		Message:     "Backend is running",
		Timestamp:   formatTime(time.Now()),
		Environment: h.environment,
		Version:     h.version,
	}
	status := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "DOWN"
		resp.Message = "Store unavailable: " + err.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

// Info handles GET / with a short description of the API.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Message: "Welcome to the itemshelf API",
		Version: h.version,
		Endpoints: map[string]string{
			"health":      "/health",
			"api":         h.basePath,
			"items":       h.basePath + "/items",
			"collections": h.basePath + "/collections",
			"stats":       h.basePath + "/stats",
		},
	})
}

// NotFound answers any request that matched no route.
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found", fmt.Sprintf("Cannot %s %s", r.Method, r.URL.RequestURI()))
}
