package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	Snapshot(ctx context.Context) (*domain.Stats, error)
}

// StatsHandler serves GET /stats.
type StatsHandler struct {
	svc statsService
	errorHandler
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger, exposeDetail bool) *StatsHandler {
	return &StatsHandler{
		svc:          svc,
		errorHandler: errorHandler{log: logger.With("handler", "stats"), exposeDetail: exposeDetail},
	}
}

type statsResponse struct {
	TotalItems       int            `json:"totalItems"`
	TotalCollections int            `json:"totalCollections"`
	ServerTime       string         `json:"serverTime"`
	Uptime           float64        `json:"uptime"` // seconds
	UptimeHuman      string         `json:"uptimeHuman"`
	MemoryUsage      memoryResponse `json:"memoryUsage"`
	Version          string         `json:"version"`
}

type memoryResponse struct {
	HeapAlloc  uint64            `json:"heapAlloc"`
	HeapSys    uint64            `json:"heapSys"`
	HeapInuse  uint64            `json:"heapInuse"`
	StackInuse uint64            `json:"stackInuse"`
	Sys        uint64            `json:"sys"`
	NumGC      uint32            `json:"numGC"`
	Goroutines int               `json:"goroutines"`
	Human      map[string]string `json:"human"`
}

// Get handles GET /stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.handleError(w, r, err, errCtx{})
		return
	}
	writeData(w, http.StatusOK, toStatsResponse(st), "")
}

func toStatsResponse(st *domain.Stats) statsResponse {
	m := st.Memory
	started := st.ServerTime.Add(-st.Uptime)
	return statsResponse{
		TotalItems:       st.TotalItems,
		TotalCollections: st.TotalCollections,
		ServerTime:       formatTime(st.ServerTime),
		Uptime:           st.Uptime.Seconds(),
		UptimeHuman:      strings.TrimSpace(humanize.RelTime(started, st.ServerTime, "", "")),
		MemoryUsage: memoryResponse{
			HeapAlloc:  m.HeapAlloc,
			HeapSys:    m.HeapSys,
			HeapInuse:  m.HeapInuse,
			StackInuse: m.StackInuse,
			Sys:        m.Sys,
			NumGC:      m.NumGC,
			Goroutines: m.Goroutines,
			Human: map[string]string{
				"heapAlloc":  humanize.IBytes(m.HeapAlloc),
				"heapSys":    humanize.IBytes(m.HeapSys),
				"heapInuse":  humanize.IBytes(m.HeapInuse),
				"stackInuse": humanize.IBytes(m.StackInuse),
				"sys":        humanize.IBytes(m.Sys),
			},
		},
		Version: st.Version,
	}
}
