// Package metrics exposes redirect pipeline counters on a private Prometheus registry.
package metrics

import (
	"net/http"

	"go-redirector/internal/redirect/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "redirect"

// Metrics implements usecase.Metrics with Prometheus counters.
type Metrics struct {
	registry *prometheus.Registry

	redirects          *prometheus.CounterVec
	rateLimited        prometheus.Counter
	cacheLookups       *prometheus.CounterVec
	clickWrites        *prometheus.CounterVec
	enrichments        *prometheus.CounterVec
	publishes          *prometheus.CounterVec
	backgroundFailures prometheus.Counter
}

var _ usecase.Metrics = (*Metrics)(nil)

// New registers all collectors, plus the Go and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Redirect responses by outcome reason.",
		}, []string{"reason"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Slug cache lookups by result.",
		}, []string{"result"}),
		clickWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_writes_total",
			Help:      "Click inserts by result.",
		}, []string{"result"}),
		enrichments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_enrichments_total",
			Help:      "Click enrichment patches by result.",
		}, []string{"result"}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_publishes_total",
			Help:      "Downstream click notifications by result.",
		}, []string{"result"}),
		backgroundFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "background_job_failures_total",
			Help:      "Background click jobs that ended in an error or panic.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.redirects,
		m.rateLimited,
		m.cacheLookups,
		m.clickWrites,
		m.enrichments,
		m.publishes,
		m.backgroundFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) CacheLookup(hit bool) {
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) ClickWrite(result string) { m.clickWrites.WithLabelValues(result).Inc() }

func (m *Metrics) Enrichment(result string) { m.enrichments.WithLabelValues(result).Inc() }

func (m *Metrics) Publish(result string) { m.publishes.WithLabelValues(result).Inc() }

func (m *Metrics) Redirect(reason string) { m.redirects.WithLabelValues(reason).Inc() }

// RateLimited counts one rejected request.
func (m *Metrics) RateLimited() { m.rateLimited.Inc() }

// BackgroundFailure counts one failed background job.
func (m *Metrics) BackgroundFailure() { m.backgroundFailures.Inc() }
