package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"go-redirector/internal/redirect/domain"
)

// SlugParam is the routing parameter that never reaches the destination.
const SlugParam = "slug"

// MergeParams builds the parameter set applied to a destination: the incoming
// parameters minus SlugParam, plus the link's UTM defaults for keys the request
// does not define. A key present with an empty value still counts as defined.
func MergeParams(link *domain.Link, incoming url.Values) url.Values {
	params := make(url.Values, len(incoming)+len(domain.UTMKeys))
	for key, values := range incoming {
		if key == SlugParam {
			continue
		}
		params[key] = append([]string(nil), values...)
	}

	if !link.AppendUTMs {
		return params
	}

	defaults := link.UTMDefaults()
	for _, key := range domain.UTMKeys {
		if _, ok := params[key]; ok {
			continue
		}
		if value, ok := defaults[key]; ok {
			params.Set(key, value)
		}
	}
	return params
}

// Compose resolves the link's destination and applies the merged parameters.
// Only destination pairs whose key is being set are dropped; every other pair
// keeps its original spelling and position.
func Compose(link *domain.Link, incoming url.Values, base *url.URL) (*url.URL, error) {
	dest, err := parseDestination(link.DestinationURL, base)
	if err != nil {
		return nil, err
	}

	merged := MergeParams(link, incoming)
	if len(merged) == 0 {
		return dest, nil
	}

	kept := make([]string, 0, strings.Count(dest.RawQuery, "&")+1)
	for _, pair := range strings.Split(dest.RawQuery, "&") {
		if pair == "" {
			continue
		}
		if _, overwritten := merged[pairKey(pair)]; overwritten {
			continue
		}
		kept = append(kept, pair)
	}
	dest.RawQuery = strings.Join(append(kept, merged.Encode()), "&")

	return dest, nil
}

// ParseQuery decodes a raw query string like url.ParseQuery but keeps pairs
// containing ';' instead of discarding them. A bare key decodes to an empty value.
func ParseQuery(raw string) url.Values {
	values := make(url.Values)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		values[key] = append(values[key], unescape(value))
	}
	return values
}

func pairKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	return unescape(key)
}

// unescape falls back to the raw text for malformed escapes.
func unescape(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}

func parseDestination(raw string, base *url.URL) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty destination", domain.ErrInvalidDestination)
	}

	dest, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDestination, err)
	}

	if dest.Scheme != "" {
		scheme := strings.ToLower(dest.Scheme)
		if scheme != "http" && scheme != "https" {
			return nil, fmt.Errorf("%w: scheme %q not allowed", domain.ErrInvalidDestination, dest.Scheme)
		}
		if dest.Host == "" {
			return nil, fmt.Errorf("%w: missing host", domain.ErrInvalidDestination)
		}
		return dest, nil
	}

	if base == nil {
		return nil, fmt.Errorf("%w: relative destination without base url", domain.ErrInvalidDestination)
	}
	return base.ResolveReference(dest), nil
}
