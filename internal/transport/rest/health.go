package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// modelStatus reports whether the remote model can be called at all.
type modelStatus interface {
	Configured() bool
}

// networkStatus reports whether the remote model is reachable.
type networkStatus interface {
	Online(ctx context.Context) bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	model   modelStatus
	network networkStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(model modelStatus, network networkStatus, version string) *HealthHandler {
	return &HealthHandler{model: model, network: network, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when an API key is configured, 503 otherwise.
// Without a key every extraction would fail, so the instance takes no traffic.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.model.Configured() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. It reports the API key state and the
// network probe with latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.model.Configured() {
		components["gemini"] = CompStatus{Status: "ok"}
	} else {
		components["gemini"] = CompStatus{Status: "unconfigured"}
		overallStatus = "down"
	}

	start := time.Now()
	online := h.network.Online(ctx)
	latency := time.Since(start)

	if online {
		components["network"] = CompStatus{Status: "ok", Latency: latency.String()}
	} else {
		components["network"] = CompStatus{Status: "down"}
		overallStatus = "down"
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// ErrorResponse is the JSON body of request-level errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
