package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ignite/pipeline-portal/internal/pkg/httputil"
	"github.com/ignite/pipeline-portal/internal/pkg/logger"
	"github.com/ignite/pipeline-portal/internal/service/dashboard"
)

const dateParamLayout = "2006-01-02"

// defaultWindowDays is the date range used when the request carries none.
const defaultWindowDays = 30

// parseParams reads the view inputs from the query string: start/end as
// inclusive YYYY-MM-DD dates plus optional client and campaign filters.
func parseParams(r *http.Request) (dashboard.Params, error) {
	q := r.URL.Query()

	end := time.Now().UTC()
	if v := q.Get("end"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return dashboard.Params{}, fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", v)
		}
		end = t
	}

	start := end.AddDate(0, 0, -(defaultWindowDays - 1))
	if v := q.Get("start"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return dashboard.Params{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", v)
		}
		start = t
	}

	if start.After(end) {
		return dashboard.Params{}, fmt.Errorf("start date %s is after end date %s",
			start.Format(dateParamLayout), end.Format(dateParamLayout))
	}

	return dashboard.Params{
		Start:    start,
		End:      end,
		Client:   q.Get("client"),
		Campaign: q.Get("campaign"),
	}, nil
}

// GetDeepInsights refreshes and returns the deep-insights view. The response
// is the hook-shaped envelope: on a fetch failure the previous data rides
// along stale-but-valid with the error message set.
func (s *Server) GetDeepInsights(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	if _, err := s.dashboards.RefreshDeep(r.Context(), p); err != nil {
		logger.Error("deep insights refresh failed", "error", err, "client", p.Client)
	}
	httputil.OK(w, s.dashboards.DeepSnapshot())
}

// GetQuickView refreshes and returns the quick-view metrics.
func (s *Server) GetQuickView(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	if _, err := s.dashboards.RefreshQuickView(r.Context(), p); err != nil {
		logger.Error("quick view refresh failed", "error", err, "client", p.Client)
	}
	httputil.OK(w, s.dashboards.QuickViewSnapshot())
}

// GetFunnel computes the pipeline funnel for the requested window.
func (s *Server) GetFunnel(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	funnel, err := s.dashboards.Funnel(r.Context(), p)
	if err != nil {
		httputil.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	httputil.OK(w, funnel)
}

// RefreshAll re-runs every dashboard view with identical inputs. This is the
// manual refetch behind the dashboard's refresh button.
func (s *Server) RefreshAll(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	if _, err := s.dashboards.RefreshDeep(r.Context(), p); err != nil {
		logger.Error("deep insights refresh failed", "error", err)
	}
	if _, err := s.dashboards.RefreshQuickView(r.Context(), p); err != nil {
		logger.Error("quick view refresh failed", "error", err)
	}
	if _, err := s.dashboards.RefreshBoard(r.Context(), p); err != nil {
		logger.Error("board refresh failed", "error", err)
	}

	httputil.OK(w, map[string]any{
		"deep":      s.dashboards.DeepSnapshot(),
		"quickview": s.dashboards.QuickViewSnapshot(),
		"board":     s.dashboards.BoardSnapshot(),
	})
}
