package api

import (
	"github.com/ignite/pipeline-portal/internal/config"
	"github.com/ignite/pipeline-portal/internal/prefs"
	"github.com/ignite/pipeline-portal/internal/service/dashboard"
)

// Server bundles the HTTP handlers with their collaborators.
type Server struct {
	cfg        *config.Config
	dashboards *dashboard.Service
	prefs      prefs.Store
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, dashboards *dashboard.Service, prefStore prefs.Store) *Server {
	return &Server{
		cfg:        cfg,
		dashboards: dashboards,
		prefs:      prefStore,
	}
}
