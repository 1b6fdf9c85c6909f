package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mediaplan/internal/core/port"
)

// Options tunes the router. A nil Registry disables /metrics and request
// instrumentation.
type Options struct {
	AllowedOrigins []string
	Registry       *prometheus.Registry
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// around port.PlannerUseCase.
type Handler struct {
	svc    port.PlannerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PlannerUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(recoverer(logger))
	r.Use(requestLogger(logger))
	if opts.Registry != nil {
		r.Use(newMetrics(opts.Registry).middleware)
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/industries", h.handleIndustries)
		r.Get("/countries", h.handleCountries)
		r.Post("/media-plan", h.handleMediaPlan)
		r.Get("/proposal", h.handleProposal)
		r.Post("/content", h.handleContent)
		r.Post("/content/render", h.handleRenderContent)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
