package api

import (
	"net/http"
	"time"

	"github.com/ignite/pipeline-portal/internal/pkg/httputil"
)

// HealthCheck reports liveness. Store reachability is intentionally not
// probed here: a flapping warehouse should degrade dashboards, not restart
// the server.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"status":  "healthy",
		"service": "pipeline-portal",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
