package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httphandler "go-redirector/internal/redirect/delivery/http"
	"go-redirector/internal/redirect/metrics"
	"go-redirector/pkg/problemdetails"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRouter(t *testing.T, limit int) http.Handler {
	f := setupTestHandler(t, false, nil)
	now := time.Now()
	limiter := httphandler.NewRateLimitMiddleware(newTestLimiter(limit, &now), nil)
	return httphandler.NewRouter(f.handler, limiter, metrics.New().Handler(), zap.NewNop())
}

// TestRouter_UnknownRoute_ReturnsProblemDetails verifies RFC 7807 bodies for unmatched paths
func TestRouter_UnknownRoute_ReturnsProblemDetails(t *testing.T) {
	router := setupTestRouter(t, 10)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, problemdetails.ContentType, rr.Header().Get("Content-Type"))

	var problem problemdetails.ProblemDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "/nope", problem.Instance)
}

// TestRouter_WrongMethod_Returns405 verifies redirects are GET only
func TestRouter_WrongMethod_Returns405(t *testing.T) {
	router := setupTestRouter(t, 10)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/r/promo10", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, problemdetails.ContentType, rr.Header().Get("Content-Type"))
}

// TestRouter_EmptySlug_RedirectsNotFound verifies /r/ is handled as an unknown slug
func TestRouter_EmptySlug_RedirectsNotFound(t *testing.T) {
	router := setupTestRouter(t, 10)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://site.example.com/?ref=broken-link&reason=not-found", rr.Header().Get("Location"))
}

// TestRouter_ProbesBypassRateLimit verifies health and metrics routes are never limited
func TestRouter_ProbesBypassRateLimit(t *testing.T) {
	router := setupTestRouter(t, 1)

	for i := 0; i < 3; i++ {
		for _, path := range []string{"/healthz", "/metrics"} {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rr.Code, path)
		}
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/a", nil))
	assert.Equal(t, http.StatusFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/r/a", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// TestRouter_ForwardedFor_IgnoredUnlessTrusted verifies a spoofed X-Forwarded-For cannot reset the limit
func TestRouter_ForwardedFor_IgnoredUnlessTrusted(t *testing.T) {
	tests := []struct {
		name  string
		trust bool
		want  int
	}{
		{name: "untrusted", trust: false, want: http.StatusTooManyRequests},
		{name: "trusted", trust: true, want: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestHandler(t, false, nil)
			now := time.Now()
			limiter := httphandler.NewRateLimitMiddleware(newTestLimiter(1, &now), nil)
			router := httphandler.NewRouter(f.handler, limiter, nil, zap.NewNop(),
				httphandler.WithTrustedProxyHeaders(tt.trust))

			first := httptest.NewRequest(http.MethodGet, "/r/a", nil)
			first.Header.Set("X-Forwarded-For", "203.0.113.1")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, first)
			require.Equal(t, http.StatusFound, rr.Code)

			second := httptest.NewRequest(http.MethodGet, "/r/a", nil)
			second.Header.Set("X-Forwarded-For", "203.0.113.2")
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, second)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
