package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes configures the router. Authentication is delegated to the fronting
// identity-aware proxy; this server only trusts the forwarded user header
// for preference scoping.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(metricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Portal-User"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/insights", func(r chi.Router) {
			r.Get("/deep", s.GetDeepInsights)
			r.Get("/quickview", s.GetQuickView)
			r.Get("/funnel", s.GetFunnel)
			r.Post("/refresh", s.RefreshAll)
		})

		r.Route("/crm", func(r chi.Router) {
			r.Get("/board", s.GetBoard)
			r.Get("/stages", s.GetStageBuckets)
		})

		r.Route("/prefs", func(r chi.Router) {
			r.Get("/{view}", s.GetPrefs)
			r.Put("/{view}", s.PutPrefs)
			r.Delete("/{view}", s.DeletePrefs)
		})
	})

	return r
}
