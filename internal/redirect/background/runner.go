package background

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-redirector/internal/redirect/usecase"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClickJobsTopic carries click jobs from request handlers to the processor.
const ClickJobsTopic = "click.jobs"

var (
	ErrRunnerClosed     = errors.New("background runner closed")
	ErrRunnerNotRunning = errors.New("background runner not running")
	ErrShutdownTimeout  = errors.New("background runner shutdown timed out")
)

// ClickProcessor handles one click job.
type ClickProcessor interface {
	Process(ctx context.Context, job usecase.ClickJob) error
}

// ErrorHandler observes a failed job. It runs on the processing goroutine.
type ErrorHandler func(job usecase.ClickJob, err error)

// Option configures a Runner.
type Option func(*Runner)

// WithJobTimeout bounds a single job.
func WithJobTimeout(d time.Duration) Option {
	return func(r *Runner) { r.jobTimeout = d }
}

// WithDrainTimeout bounds how long Close waits for scheduled jobs.
func WithDrainTimeout(d time.Duration) Option {
	return func(r *Runner) { r.drainTimeout = d }
}

// WithBuffer sets the subscriber channel buffer.
func WithBuffer(n int64) Option {
	return func(r *Runner) { r.buffer = n }
}

// WithErrorHandler registers a callback for failed jobs, in addition to logging.
func WithErrorHandler(h ErrorHandler) Option {
	return func(r *Runner) { r.onError = h }
}

// Runner executes click jobs after the response has been sent. Jobs travel over
// an in-process watermill channel; the handler always acks, so a failed job is
// reported once and never redelivered.
type Runner struct {
	processor    ClickProcessor
	logger       *zap.Logger
	jobTimeout   time.Duration
	drainTimeout time.Duration
	buffer       int64
	onError      ErrorHandler

	pubsub *gochannel.GoChannel
	router *message.Router

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// NewRunner creates a runner. Call Run before scheduling jobs.
func NewRunner(processor ClickProcessor, logger *zap.Logger, opts ...Option) (*Runner, error) {
	r := &Runner{
		processor:    processor,
		logger:       logger,
		jobTimeout:   5 * time.Second,
		drainTimeout: 10 * time.Second,
		buffer:       256,
	}
	for _, opt := range opts {
		opt(r)
	}

	wmLogger := NewZapLoggerAdapter(logger)

	r.pubsub = gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: r.buffer,
			Persistent:          false,
		},
		wmLogger,
	)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: r.drainTimeout}, wmLogger)
	if err != nil {
		return nil, err
	}
	router.AddMiddleware(middleware.Timeout(r.jobTimeout))
	router.AddNoPublisherHandler("click_processor", ClickJobsTopic, r.pubsub, r.handle)
	r.router = router

	return r, nil
}

// Run processes jobs until ctx is cancelled or Close is called.
func (r *Runner) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once the runner accepts jobs.
func (r *Runner) Running() chan struct{} {
	return r.router.Running()
}

// Schedule queues job without waiting for it to run.
func (r *Runner) Schedule(job usecase.ClickJob) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrRunnerClosed
	}
	if !r.router.IsRunning() {
		// Without a subscriber the channel would drop the message silently.
		return ErrRunnerNotRunning
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal click job: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set("slug", job.Slug)

	r.inflight.Add(1)
	if err := r.pubsub.Publish(ClickJobsTopic, msg); err != nil {
		r.inflight.Done()
		return err
	}
	return nil
}

// Close stops accepting jobs and waits for queued ones, then shuts the router
// down. The whole call is bounded by the drain timeout.
func (r *Runner) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	deadline := time.Now().Add(r.drainTimeout)

	drained := make(chan struct{})
	go func() {
		r.inflight.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(time.Until(deadline)):
		r.logger.Warn("background jobs still pending at shutdown", zap.Duration("drain_timeout", r.drainTimeout))
	}

	closed := make(chan error, 1)
	go func() {
		routerErr := r.router.Close()
		pubsubErr := r.pubsub.Close()
		closed <- errors.Join(routerErr, pubsubErr)
	}()

	select {
	case err := <-closed:
		return err
	case <-time.After(time.Until(deadline)):
		return ErrShutdownTimeout
	}
}

func (r *Runner) handle(msg *message.Message) error {
	defer r.inflight.Done()

	var job usecase.ClickJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		r.logger.Error("failed to decode click job", zap.String("message_uuid", msg.UUID), zap.Error(err))
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			r.report(job, fmt.Errorf("click job panicked: %v", p))
		}
	}()

	if err := r.processor.Process(msg.Context(), job); err != nil {
		r.report(job, err)
	}
	return nil
}

func (r *Runner) report(job usecase.ClickJob, err error) {
	r.logger.Error("click job failed",
		zap.String("slug", job.Slug),
		zap.Int64("link_id", job.Click.LinkID),
		zap.Int64("click_id", job.Click.ID),
		zap.Error(err),
	)
	if r.onError != nil {
		r.onError(job, err)
	}
}

var _ usecase.ClickScheduler = (*Runner)(nil)
