package usecase

import (
	"context"

	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/redirect/enrichment"
	"go-redirector/internal/shared/events"
)

// SlugCache is the process-local link cache consulted before the store.
type SlugCache interface {
	Get(slug string) (*domain.Link, bool)
	Set(slug string, link *domain.Link)
}

// DeviceDetector derives device type, browser and OS from a user agent.
type DeviceDetector interface {
	Detect(userAgent string) enrichment.Device
}

// GeoResolver derives a best-effort location from edge headers and the client IP.
type GeoResolver interface {
	Resolve(headers map[string]string, clientIP string) enrichment.Geo
}

// RefererClassifier maps a referer URL to a traffic source.
type RefererClassifier interface {
	ClassifySource(referer string) string
}

// ClickPublisher notifies downstream consumers about processed clicks.
type ClickPublisher interface {
	PublishClick(ctx context.Context, event events.ClickRecorded) error
}

// ClickScheduler runs click jobs after the response has been written.
type ClickScheduler interface {
	Schedule(job ClickJob) error
}

// Metrics receives pipeline outcomes. Implementations must be safe for concurrent use.
type Metrics interface {
	CacheLookup(hit bool)
	ClickWrite(result string)
	Enrichment(result string)
	Publish(result string)
	Redirect(reason string)
}

// Outcome labels reported through Metrics.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

type nopMetrics struct{}

func (nopMetrics) CacheLookup(bool)  {}
func (nopMetrics) ClickWrite(string) {}
func (nopMetrics) Enrichment(string) {}
func (nopMetrics) Publish(string)    {}
func (nopMetrics) Redirect(string)   {}

// NopMetrics discards every observation.
var NopMetrics Metrics = nopMetrics{}
