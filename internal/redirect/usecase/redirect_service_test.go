package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"go-redirector/internal/redirect/domain"
	"go-redirector/internal/redirect/testutil/mocks"
	"go-redirector/internal/redirect/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type redirectFixture struct {
	repo      *mocks.MockLinkRepository
	clicks    *mocks.MockClickRepository
	scheduler *mocks.MockClickScheduler
	service   *usecase.RedirectService
}

func newRedirectFixture(t *testing.T, withStore bool) *redirectFixture {
	f := &redirectFixture{
		repo:      mocks.NewMockLinkRepository(t),
		clicks:    mocks.NewMockClickRepository(t),
		scheduler: mocks.NewMockClickScheduler(t),
	}

	base, err := url.Parse("https://site.example.com")
	require.NoError(t, err)

	var repo usecase.LinkRepository
	if withStore {
		repo = f.repo
	}

	clock := &fakeClock{now: time.Now()}
	resolver := usecase.NewLinkResolver(repo, newTestCache(time.Minute, clock), nil, zap.NewNop())
	sink := usecase.NewBlockingSink(f.clicks, f.scheduler, time.Second, nil, zap.NewNop())
	f.service = usecase.NewRedirectService(resolver, usecase.NewClickRecorder("salt"), sink, base, nil, zap.NewNop())
	return f
}

func promoLink() *domain.Link {
	return &domain.Link{
		ID:             10,
		Slug:           "promo10",
		DestinationURL: "https://shop.example.com/deal",
		AppendUTMs:     true,
		UTMSource:      "newsletter",
		Active:         true,
	}
}

func TestRedirect_AppliesDefaultUTM(t *testing.T) {
	// Setup
	f := newRedirectFixture(t, true)
	ctx := context.Background()
	f.repo.EXPECT().FindActiveBySlug(ctx, "promo10").Return(promoLink(), nil)

	var stored domain.ClickEvent
	f.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).
		Run(func(_ context.Context, click *domain.ClickEvent) { stored = *click }).
		Return(int64(1), nil)

	// Act
	result := f.service.Redirect(ctx, "promo10", url.Values{}, domain.RequestMeta{ClientIP: "203.0.113.9", UserAgent: "Mozilla/5.0"})

	// Assert
	assert.Equal(t, "https://shop.example.com/deal?utm_source=newsletter", result.Location)
	assert.Empty(t, result.Reason)
	assert.NotNil(t, result.AfterResponse)
	assert.Equal(t, int64(10), stored.LinkID)
	assert.Equal(t, "newsletter", stored.UTMSource)
}

func TestRedirect_RequestUTMWins(t *testing.T) {
	f := newRedirectFixture(t, true)
	f.repo.EXPECT().FindActiveBySlug(mock.Anything, "promo10").Return(promoLink(), nil)

	var stored domain.ClickEvent
	f.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).
		Run(func(_ context.Context, click *domain.ClickEvent) { stored = *click }).
		Return(int64(2), nil)

	result := f.service.Redirect(context.Background(), "promo10", url.Values{"utm_source": {"twitter"}}, domain.RequestMeta{})

	assert.Equal(t, "https://shop.example.com/deal?utm_source=twitter", result.Location)
	assert.Equal(t, "twitter", stored.UTMSource)
}

func TestRedirect_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		withStore bool
		link      *domain.Link
		err       error
		reason    string
	}{
		{name: "unknown slug", withStore: true, err: domain.ErrLinkNotFound, reason: domain.ReasonNotFound},
		{name: "store failure", withStore: true, err: errors.New("timeout"), reason: domain.ReasonFetchError},
		{name: "no store", withStore: false, reason: domain.ReasonConfigError},
		{
			name:      "invalid destination",
			withStore: true,
			link:      &domain.Link{ID: 3, Slug: "bad", DestinationURL: "mailto:someone@example.com", Active: true},
			reason:    domain.ReasonInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRedirectFixture(t, tt.withStore)
			if tt.withStore {
				f.repo.EXPECT().FindActiveBySlug(mock.Anything, "bad").Return(tt.link, tt.err)
			}

			result := f.service.Redirect(context.Background(), "bad", nil, domain.RequestMeta{})

			assert.Equal(t, tt.reason, result.Reason)
			assert.Equal(t, "https://site.example.com/?ref=broken-link&reason="+tt.reason, result.Location)
			assert.Nil(t, result.AfterResponse)
			f.clicks.AssertNotCalled(t, "InsertClick", mock.Anything, mock.Anything)
		})
	}
}

func TestRedirect_ClickWriteFailure_StillRedirects(t *testing.T) {
	f := newRedirectFixture(t, true)
	f.repo.EXPECT().FindActiveBySlug(mock.Anything, "promo10").Return(promoLink(), nil)
	f.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(int64(0), errors.New("read-only database"))

	result := f.service.Redirect(context.Background(), "promo10", nil, domain.RequestMeta{})

	assert.Equal(t, "https://shop.example.com/deal?utm_source=newsletter", result.Location)
	assert.Empty(t, result.Reason)
	assert.Nil(t, result.AfterResponse)
}

func TestFallbackURL(t *testing.T) {
	withPath, _ := url.Parse("https://site.example.com/app/")

	assert.Equal(t, "https://site.example.com/app/?ref=broken-link&reason=error", usecase.FallbackURL(withPath, domain.ReasonError))
	assert.Equal(t, "/?ref=broken-link&reason=not-found", usecase.FallbackURL(nil, domain.ReasonNotFound))
}
