// Package health exposes a JSON health endpoint aggregating per-component
// checks.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status of a component or the whole service.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check is the outcome of a single component probe.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Response is the health endpoint payload.
type Response struct {
	Status        Status           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	Checks        map[string]Check `json:"checks,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
}

// CheckFunc probes one component; a nil error means healthy.
type CheckFunc func(ctx context.Context) error

// Handler serves health check requests.
type Handler struct {
	mu        sync.RWMutex
	checks    map[string]CheckFunc
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a health handler. Each registered check runs with the
// given per-check timeout.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		checks:    make(map[string]CheckFunc),
		timeout:   timeout,
		startTime: time.Now(),
	}
}

// Register adds a named component check.
func (h *Handler) Register(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// ServeHTTP runs all checks and reports 200 when every component is healthy,
// 503 otherwise.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	resp := Response{
		Status:        StatusHealthy,
		Timestamp:     time.Now().UTC(),
		Checks:        make(map[string]Check, len(checks)),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	for name, check := range checks {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		start := time.Now()
		err := check(ctx)
		cancel()

		result := Check{
			Name:       name,
			Status:     StatusHealthy,
			DurationMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			result.Status = StatusUnhealthy
			result.Message = err.Error()
			resp.Status = StatusUnhealthy
		}
		resp.Checks[name] = result
	}

	status := http.StatusOK
	if resp.Status != StatusHealthy {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
