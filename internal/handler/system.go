package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pulselytics/pulselytics-go/internal/config"
	"github.com/pulselytics/pulselytics-go/internal/repository"
)

// SystemHandler serves the liveness message and the best-effort store
// diagnostics endpoint.
type SystemHandler struct {
	store *repository.Store
	cfg   config.Config
}

// NewSystemHandler creates a new SystemHandler. store may be nil.
func NewSystemHandler(store *repository.Store, cfg config.Config) *SystemHandler {
	return &SystemHandler{store: store, cfg: cfg}
}

// DiagnosticsResponse reports store connectivity and configuration
// flags. Every field is a human-readable status string; internal errors
// are rendered into Database rather than propagated.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HandleRoot handles GET / requests.
func (h *SystemHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "SaaS Analytics Backend Running"})
}

// HandleTest handles GET /test requests. It never hard-fails: whatever
// goes wrong talking to the store is reported as a status string.
func (h *SystemHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp.ConnectionStatus = "connected"
		if err := h.store.Ping(ctx); err != nil {
			resp.Database = "error: " + truncate(err.Error(), 50)
		} else if names, err := h.store.CollectionNames(ctx); err != nil {
			resp.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			resp.Database = "connected"
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
		}
	}

	resp.DatabaseURL = setStatus(h.cfg.DatabaseURLSet)
	resp.DatabaseName = setStatus(h.cfg.DatabaseNameSet)

	writeJSON(w, http.StatusOK, resp)
}

func setStatus(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
