package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"go-redirector/internal/redirect/ratelimit"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RateLimitMiddleware admits requests through a per-client sliding window.
// The window is process-local: each instance behind a load balancer enforces
// its own limit. The client key is the connection's IP unless the router was
// built WithTrustedProxyHeaders.
type RateLimitMiddleware struct {
	limiter  *ratelimit.SlidingWindow
	onReject func()
}

// NewRateLimitMiddleware wraps limiter. onReject may be nil.
func NewRateLimitMiddleware(limiter *ratelimit.SlidingWindow, onReject func()) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, onReject: onReject}
}

// Handler rejects over-limit clients with 429 before any lookup or click logging.
func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := m.limiter.Check(clientIP(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			if m.onReject != nil {
				m.onReject()
			}
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "Rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggerMiddleware returns a middleware that logs HTTP requests using Zap
func LoggerMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				}
				if loc := ww.Header().Get("Location"); loc != "" {
					fields = append(fields, zap.String("location", loc))
				}
				logger.Info("http request", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
