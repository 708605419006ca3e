package usecase

import (
	"net/url"
	"testing"

	"go-redirector/internal/redirect/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestCompose(t *testing.T) {
	base := mustParse(t, "https://site.example.com")

	tests := []struct {
		name     string
		link     domain.Link
		incoming url.Values
		want     string
	}{
		{
			name:     "default utm applied when request lacks it",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: url.Values{},
			want:     "https://shop.example.com/deal?utm_source=newsletter",
		},
		{
			name:     "request wins over default",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: url.Values{"utm_source": {"twitter"}},
			want:     "https://shop.example.com/deal?utm_source=twitter",
		},
		{
			name:     "empty request value still wins",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: url.Values{"utm_source": {""}},
			want:     "https://shop.example.com/deal?utm_source=",
		},
		{
			name:     "defaults ignored when append disabled",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal", AppendUTMs: false, UTMSource: "newsletter"},
			incoming: url.Values{"ref": {"abc"}},
			want:     "https://shop.example.com/deal?ref=abc",
		},
		{
			name:     "slug routing parameter dropped",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal"},
			incoming: url.Values{"slug": {"promo10"}, "a": {"1"}},
			want:     "https://shop.example.com/deal?a=1",
		},
		{
			name:     "request overwrites destination literal",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal?ref=x&keep=1", AppendUTMs: true, UTMMedium: "email"},
			incoming: url.Values{"ref": {"y"}},
			want:     "https://shop.example.com/deal?keep=1&ref=y&utm_medium=email",
		},
		{
			name:     "relative destination resolved against base",
			link:     domain.Link{DestinationURL: "/pricing", AppendUTMs: true, UTMCampaign: "spring"},
			incoming: nil,
			want:     "https://site.example.com/pricing?utm_campaign=spring",
		},
		{
			name:     "fragment preserved",
			link:     domain.Link{DestinationURL: "https://docs.example.com/guide#install"},
			incoming: url.Values{"x": {"1"}},
			want:     "https://docs.example.com/guide?x=1#install",
		},
		{
			name:     "semicolon pair on destination survives",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal?ref=a;b&x=1", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: url.Values{},
			want:     "https://shop.example.com/deal?ref=a;b&x=1&utm_source=newsletter",
		},
		{
			name:     "destination order and bare keys kept",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal?b=2&flag&a=1", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: url.Values{},
			want:     "https://shop.example.com/deal?b=2&flag&a=1&utm_source=newsletter",
		},
		{
			name:     "semicolon in request value wins over default",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal", AppendUTMs: true, UTMSource: "newsletter"},
			incoming: ParseQuery("utm_source=a;b"),
			want:     "https://shop.example.com/deal?utm_source=a%3Bb",
		},
		{
			name:     "nothing to merge leaves raw query untouched",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal?b=2&flag&a=1;c"},
			incoming: url.Values{},
			want:     "https://shop.example.com/deal?b=2&flag&a=1;c",
		},
		{
			name:     "no parameters leaves destination untouched",
			link:     domain.Link{DestinationURL: "https://shop.example.com/deal"},
			incoming: url.Values{},
			want:     "https://shop.example.com/deal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(&tt.link, tt.incoming, base)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCompose_InvalidDestination(t *testing.T) {
	base := mustParse(t, "https://site.example.com")

	for _, dest := range []string{"", "   ", "javascript:alert(1)", "ftp://files.example.com/x", "https://", "http://[::1"} {
		t.Run(dest, func(t *testing.T) {
			_, err := Compose(&domain.Link{DestinationURL: dest}, nil, base)

			assert.ErrorIs(t, err, domain.ErrInvalidDestination)
		})
	}
}

func TestCompose_RelativeWithoutBase(t *testing.T) {
	_, err := Compose(&domain.Link{DestinationURL: "/pricing"}, nil, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidDestination)
}

func TestMergeParams_DoesNotAliasIncoming(t *testing.T) {
	incoming := url.Values{"a": {"1"}}

	merged := MergeParams(&domain.Link{}, incoming)
	merged["a"][0] = "changed"

	assert.Equal(t, "1", incoming.Get("a"))
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want url.Values
	}{
		{raw: "", want: url.Values{}},
		{raw: "utm_source=a;b", want: url.Values{"utm_source": {"a;b"}}},
		{raw: "flag&x=1&x=2", want: url.Values{"flag": {""}, "x": {"1", "2"}}},
		{raw: "q=hello+world&e=%zz", want: url.Values{"q": {"hello world"}, "e": {"%zz"}}},
		{raw: "a=1&&b=%3D", want: url.Values{"a": {"1"}, "b": {"="}}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.raw))
		})
	}
}
