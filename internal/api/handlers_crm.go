package api

import (
	"net/http"

	"github.com/ignite/pipeline-portal/internal/pkg/httputil"
	"github.com/ignite/pipeline-portal/internal/pkg/logger"
)

// GetBoard refreshes and returns the CRM kanban board.
func (s *Server) GetBoard(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	if _, err := s.dashboards.RefreshBoard(r.Context(), p); err != nil {
		logger.Error("board refresh failed", "error", err, "client", p.Client)
	}
	httputil.OK(w, s.dashboards.BoardSnapshot())
}

// GetStageBuckets returns exclusive per-stage lead counts for the grid's
// pipeline summary.
func (s *Server) GetStageBuckets(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	buckets, err := s.dashboards.StageBuckets(r.Context(), p)
	if err != nil {
		httputil.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	httputil.OK(w, buckets)
}
