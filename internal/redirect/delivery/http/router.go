package http

import (
	"net/http"

	"go-redirector/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	trustProxyHeaders bool
}

// WithTrustedProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP.
// Enable it only behind a proxy that overwrites those headers; otherwise any
// client can choose its own rate-limit key.
func WithTrustedProxyHeaders(trust bool) RouterOption {
	return func(c *routerConfig) {
		c.trustProxyHeaders = trust
	}
}

// NewRouter mounts the redirect endpoint behind the rate limiter. Health and
// metrics routes bypass it. metricsHandler may be nil.
func NewRouter(handler *Handler, rateLimiter *RateLimitMiddleware, metricsHandler http.Handler, logger *zap.Logger, opts ...RouterOption) http.Handler {
	var cfg routerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.trustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		problemdetails.Write(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			"No route matches "+req.URL.Path,
		).WithInstance(req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		problemdetails.Write(w, problemdetails.New(
			http.StatusMethodNotAllowed,
			problemdetails.TypeMethodNotAllowed,
			"Method Not Allowed",
			req.Method+" is not supported on "+req.URL.Path,
		).WithInstance(req.URL.Path))
	})

	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Handler)
		r.Get("/r/{slug}", handler.Redirect)
		r.Get("/r/", handler.Redirect)
	})

	return r
}
