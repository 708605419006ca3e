package usecase

import (
	"context"
	"time"

	"go-redirector/internal/redirect/domain"

	"go.uber.org/zap"
)

// Click logging modes.
const (
	ClickLogBlocking = "blocking"
	ClickLogDeferred = "deferred"
)

// ClickJob is the unit of post-response work. Click.ID is zero until the
// click has been inserted.
type ClickJob struct {
	Slug  string             `json:"slug"`
	Click domain.ClickEvent  `json:"click"`
	Meta  domain.RequestMeta `json:"meta"`
}

// ClickSink persists a click for an accepted redirect. Record never fails the
// redirect; the returned function, if not nil, must be called once the response
// has been written.
type ClickSink interface {
	Record(ctx context.Context, job ClickJob) (afterResponse func())
	Mode() string
}

// NewClickSink returns the sink for mode, defaulting to blocking.
func NewClickSink(mode string, clicks ClickRepository, scheduler ClickScheduler, writeTimeout time.Duration, metrics Metrics, logger *zap.Logger) ClickSink {
	if mode == ClickLogDeferred {
		return NewDeferredSink(scheduler, logger)
	}
	return NewBlockingSink(clicks, scheduler, writeTimeout, metrics, logger)
}

// BlockingSink inserts the click before the redirect is sent and schedules
// enrichment of the stored row afterwards.
type BlockingSink struct {
	clicks       ClickRepository
	scheduler    ClickScheduler
	writeTimeout time.Duration
	metrics      Metrics
	logger       *zap.Logger
}

// NewBlockingSink creates a sink that awaits the insert. A non-positive
// writeTimeout leaves the request context as the only bound.
func NewBlockingSink(clicks ClickRepository, scheduler ClickScheduler, writeTimeout time.Duration, metrics Metrics, logger *zap.Logger) *BlockingSink {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &BlockingSink{
		clicks:       clicks,
		scheduler:    scheduler,
		writeTimeout: writeTimeout,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *BlockingSink) Mode() string { return ClickLogBlocking }

// Record inserts the click synchronously. Failures are logged and counted only.
func (s *BlockingSink) Record(ctx context.Context, job ClickJob) func() {
	if s.clicks == nil {
		s.metrics.ClickWrite(ResultSkipped)
		return nil
	}

	// The insert must not be abandoned because the client went away.
	writeCtx := context.WithoutCancel(ctx)
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(writeCtx, s.writeTimeout)
		defer cancel()
	}

	id, err := s.clicks.InsertClick(writeCtx, &job.Click)
	if err != nil {
		s.metrics.ClickWrite(ResultError)
		s.logger.Error("failed to record click",
			zap.String("slug", job.Slug),
			zap.Int64("link_id", job.Click.LinkID),
			zap.Error(err),
		)
		return nil
	}
	s.metrics.ClickWrite(ResultOK)

	job.Click.ID = id
	return scheduleAfter(s.scheduler, job, s.logger)
}

// DeferredSink hands the whole click, insert included, to the background path.
// A job still queued when the process dies is lost.
type DeferredSink struct {
	scheduler ClickScheduler
	logger    *zap.Logger
}

// NewDeferredSink creates a sink that never blocks the redirect.
func NewDeferredSink(scheduler ClickScheduler, logger *zap.Logger) *DeferredSink {
	return &DeferredSink{scheduler: scheduler, logger: logger}
}

func (s *DeferredSink) Mode() string { return ClickLogDeferred }

// Record schedules the insert to run after the response.
func (s *DeferredSink) Record(_ context.Context, job ClickJob) func() {
	job.Click.ID = 0
	return scheduleAfter(s.scheduler, job, s.logger)
}

func scheduleAfter(scheduler ClickScheduler, job ClickJob, logger *zap.Logger) func() {
	if scheduler == nil {
		return nil
	}
	return func() {
		if err := scheduler.Schedule(job); err != nil {
			logger.Warn("failed to schedule click job",
				zap.String("slug", job.Slug),
				zap.Int64("link_id", job.Click.LinkID),
				zap.Int64("click_id", job.Click.ID),
				zap.Error(err),
			)
		}
	}
}
