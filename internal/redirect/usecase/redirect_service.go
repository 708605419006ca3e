package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go-redirector/internal/redirect/domain"

	"go.uber.org/zap"
)

// ReasonOK labels successful redirects in metrics.
const ReasonOK = "ok"

// Result is the outcome of one redirect request.
type Result struct {
	// Location is the composed destination, or the homepage fallback.
	Location string
	// Reason is empty on success and one of the domain.Reason* codes otherwise.
	Reason string
	// AfterResponse, when set, must run after the redirect has been written.
	AfterResponse func()
}

// RedirectService wires resolution, composition and click recording for one request.
type RedirectService struct {
	resolver *LinkResolver
	recorder *ClickRecorder
	sink     ClickSink
	baseURL  *url.URL
	metrics  Metrics
	logger   *zap.Logger
}

// NewRedirectService creates a new redirect service
func NewRedirectService(resolver *LinkResolver, recorder *ClickRecorder, sink ClickSink, baseURL *url.URL, metrics Metrics, logger *zap.Logger) *RedirectService {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &RedirectService{
		resolver: resolver,
		recorder: recorder,
		sink:     sink,
		baseURL:  baseURL,
		metrics:  metrics,
		logger:   logger,
	}
}

// Redirect resolves slug and returns where to send the client. It never fails:
// every error degrades to the homepage fallback with a reason code.
func (s *RedirectService) Redirect(ctx context.Context, slug string, query url.Values, meta domain.RequestMeta) Result {
	link, err := s.resolver.Resolve(ctx, slug)
	if err != nil {
		return s.fail(slug, err)
	}

	dest, err := Compose(link, query, s.baseURL)
	if err != nil {
		s.logger.Warn("link has an invalid destination",
			zap.String("slug", slug),
			zap.Int64("link_id", link.ID),
			zap.Error(err),
		)
		return s.fail(slug, err)
	}

	click := s.recorder.Build(meta, link, MergeParams(link, query))
	after := s.sink.Record(ctx, ClickJob{Slug: slug, Click: click, Meta: meta})

	s.metrics.Redirect(ReasonOK)
	return Result{Location: dest.String(), AfterResponse: after}
}

// Fallback returns the homepage redirect carrying reason.
func (s *RedirectService) Fallback(reason string) Result {
	s.metrics.Redirect(reason)
	return Result{Location: FallbackURL(s.baseURL, reason), Reason: reason}
}

func (s *RedirectService) fail(slug string, err error) Result {
	reason := domain.FallbackReason(err)
	if !errors.Is(err, domain.ErrLinkNotFound) {
		s.logger.Info("redirect degraded to fallback",
			zap.String("slug", slug),
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
	return s.Fallback(reason)
}

// FallbackURL builds {base}/?ref=broken-link&reason={reason}.
func FallbackURL(base *url.URL, reason string) string {
	root := ""
	if base != nil {
		root = strings.TrimRight(base.String(), "/")
	}
	return root + "/?ref=broken-link&reason=" + url.QueryEscape(reason)
}
