package handlers

import (
	"net/http"
	"time"

	"campusmap/pkg/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store store.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the body of health check responses.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// Liveness handles GET /health. It answers healthy as long as the process
// is serving requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}

// Readiness handles GET /health/ready. It answers healthy only when the
// backing datastore is reachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Healthcheck(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
			Error:     err.Error(),
		})
		return
	}
	WriteJSONOK(w, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}
