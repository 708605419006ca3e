package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/redirect/enrichment"
	"go-redirector/internal/redirect/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports store reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the redirect and health endpoints.
type Handler struct {
	service *usecase.RedirectService
	db      Pinger // nil when no store is configured
	logger  *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.RedirectService, db Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		db:      db,
		logger:  logger,
	}
}

// Redirect handles GET /r/{slug}. It always answers 302: to the composed
// destination, or to the homepage with a reason code.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	// Everything the background path needs is copied out of r before the response is written.
	meta := requestMeta(r)
	result := h.resolve(r.Context(), slug, meta)

	http.Redirect(w, r, result.Location, http.StatusFound)

	if result.AfterResponse == nil {
		return
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	result.AfterResponse()
}

func (h *Handler) resolve(ctx context.Context, slug string, meta domain.RequestMeta) (result usecase.Result) {
	defer func() {
		if p := recover(); p != nil {
			h.logger.Error("redirect panicked",
				zap.String("slug", slug),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
			result = h.service.Fallback(domain.ReasonError)
		}
	}()

	return h.service.Redirect(ctx, slug, meta.Query, meta)
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Reason: "link store not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Reason: "database unavailable: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func requestMeta(r *http.Request) domain.RequestMeta {
	geo := make(map[string]string)
	for _, name := range enrichment.GeoHeaderNames {
		if v := r.Header.Get(name); v != "" {
			geo[name] = v
		}
	}

	return domain.RequestMeta{
		ClientIP:   clientIP(r),
		UserAgent:  r.Header.Get("User-Agent"),
		Referer:    r.Header.Get("Referer"),
		Query:      usecase.ParseQuery(r.URL.RawQuery),
		GeoHeaders: geo,
	}
}

// clientIP strips the port from RemoteAddr. With trusted proxy headers RealIP has already replaced it.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
