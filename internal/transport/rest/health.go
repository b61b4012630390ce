package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
)

const healthCheckTimeout = 2 * time.Second

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status      HealthStatus             `json:"status"`
	Environment string                   `json:"environment"`
	CheckedAt   time.Time                `json:"checked_at"`
	Components  map[string]ComponentInfo `json:"components"`
}

type ComponentInfo struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	DurationMs int64        `json:"duration_ms"`
}

// Check probes one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	environment string
	checks      map[string]Check
}

// NewHealthHandler registers the database probe. More components go through AddCheck.
func NewHealthHandler(db *sql.DB, environment string) *HealthHandler {
	h := &HealthHandler{environment: environment, checks: map[string]Check{}}
	if db != nil {
		h.AddCheck("database", db.PingContext)
	}
	return h
}

func (h *HealthHandler) AddCheck(name string, check Check) {
	h.checks[name] = check
}

// Ping answers without touching any dependency.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeHealthJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// Health runs every check; one failure makes the service unhealthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:      HealthHealthy,
		Environment: h.environment,
		Components:  make(map[string]ComponentInfo, len(h.checks)),
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		started := time.Now()
		info := ComponentInfo{Status: HealthHealthy}
		if err := h.checks[name](ctx); err != nil {
			info.Status = HealthUnhealthy
			info.Message = err.Error()
			resp.Status = HealthUnhealthy
		}
		info.DurationMs = time.Since(started).Milliseconds()
		resp.Components[name] = info
	}
	resp.CheckedAt = time.Now().UTC()

	code := http.StatusOK
	if resp.Status == HealthUnhealthy {
		code = http.StatusServiceUnavailable
	}
	writeHealthJSON(w, code, resp)
}

func writeHealthJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
