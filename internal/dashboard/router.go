package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vilaca/profile-detective/internal/observability"
)

// RouterConfig holds what NewRouter needs besides the handler.
type RouterConfig struct {
	Logger   Logger
	Metrics  *observability.Metrics // nil disables metrics middleware and /metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the chi router with the middleware stack and all routes.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(observability.MetricsMiddleware(cfg.Metrics))
	}
	r.Use(middleware.Recoverer)

	h.RegisterRoutes(r)

	if cfg.Metrics != nil && cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
