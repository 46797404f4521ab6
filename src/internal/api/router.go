package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keen-tools/blocklist-gen/src/internal/log"
	"github.com/keen-tools/blocklist-gen/src/internal/metrics"
)

// NewRouter creates the HTTP router of the serve command.
func NewRouter(holder *SnapshotHolder, m *metrics.Metrics, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery(logger))
	r.Use(Logger(logger))

	h := NewHandler(holder, logger)

	// Generated blocklists
	r.Get("/blocklist", h.GetDomains)
	r.Head("/blocklist", h.GetDomains)
	r.Get("/blocklist.hosts", h.GetHosts)
	r.Head("/blocklist.hosts", h.GetHosts)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
	})

	r.Get("/health", h.CheckHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
