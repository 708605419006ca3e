package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/shared/events"

	"go.uber.org/zap"
)

// ClickProcessor is the background half of the click pipeline: it inserts the
// click when the deferred sink left that to it, derives the enrichment fields,
// patches the stored row by id and notifies downstream consumers.
type ClickProcessor struct {
	clicks        ClickRepository
	devices       DeviceDetector
	geo           GeoResolver
	referers      RefererClassifier
	publisher     ClickPublisher // may be nil
	recencyWindow time.Duration
	metrics       Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewClickProcessor creates a processor. Clicks older than recencyWindow are
// never patched.
func NewClickProcessor(
	clicks ClickRepository,
	devices DeviceDetector,
	geo GeoResolver,
	referers RefererClassifier,
	publisher ClickPublisher,
	recencyWindow time.Duration,
	metrics Metrics,
	logger *zap.Logger,
) *ClickProcessor {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &ClickProcessor{
		clicks:        clicks,
		devices:       devices,
		geo:           geo,
		referers:      referers,
		publisher:     publisher,
		recencyWindow: recencyWindow,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

// Process runs one click job. The returned error is for the caller's bookkeeping;
// a failed enrichment never removes or duplicates the stored click.
func (p *ClickProcessor) Process(ctx context.Context, job ClickJob) error {
	if job.Click.ID == 0 {
		id, err := p.clicks.InsertClick(ctx, &job.Click)
		if err != nil {
			p.metrics.ClickWrite(ResultError)
			return fmt.Errorf("record click for %q: %w", job.Slug, err)
		}
		p.metrics.ClickWrite(ResultOK)
		job.Click.ID = id
	}

	enrichment, err := p.Enrich(job.Meta)
	if err != nil {
		p.metrics.Enrichment(ResultError)
		return fmt.Errorf("enrich click %d: %w", job.Click.ID, err)
	}

	notBefore := p.now().Add(-p.recencyWindow).UnixMilli()
	if err := p.clicks.ApplyEnrichment(ctx, job.Click.ID, enrichment, notBefore); err != nil {
		p.metrics.Enrichment(ResultError)
		return fmt.Errorf("patch click %d: %w", job.Click.ID, err)
	}
	p.metrics.Enrichment(ResultOK)

	p.publish(ctx, job, enrichment)
	return nil
}

// Enrich derives device, location, traffic source and the raw query snapshot.
func (p *ClickProcessor) Enrich(meta domain.RequestMeta) (domain.Enrichment, error) {
	device := p.devices.Detect(meta.UserAgent)
	geo := p.geo.Resolve(meta.GeoHeaders, meta.ClientIP)

	var queryParams string
	if len(meta.Query) > 0 {
		raw, err := json.Marshal(meta.Query)
		if err != nil {
			return domain.Enrichment{}, err
		}
		queryParams = string(raw)
	}

	return domain.Enrichment{
		DeviceType:    device.Type,
		Browser:       device.Browser,
		OS:            device.OS,
		CountryCode:   geo.CountryCode,
		Region:        geo.Region,
		City:          geo.City,
		TrafficSource: p.referers.ClassifySource(meta.Referer),
		QueryParams:   queryParams,
	}, nil
}

func (p *ClickProcessor) publish(ctx context.Context, job ClickJob, e domain.Enrichment) {
	if p.publisher == nil {
		return
	}

	event := events.ClickRecorded{
		ClickID:       job.Click.ID,
		LinkID:        job.Click.LinkID,
		Slug:          job.Slug,
		ClickedAt:     job.Click.ClickedAt,
		IsBot:         job.Click.IsBot,
		DeviceType:    e.DeviceType,
		Browser:       e.Browser,
		OS:            e.OS,
		CountryCode:   e.CountryCode,
		TrafficSource: e.TrafficSource,
		UTMSource:     job.Click.UTMSource,
		UTMMedium:     job.Click.UTMMedium,
		UTMCampaign:   job.Click.UTMCampaign,
	}

	if err := p.publisher.PublishClick(ctx, event); err != nil {
		p.metrics.Publish(ResultError)
		p.logger.Warn("failed to publish click recorded event",
			zap.String("slug", job.Slug),
			zap.Int64("click_id", job.Click.ID),
			zap.Error(err),
		)
		return
	}
	p.metrics.Publish(ResultOK)
}
