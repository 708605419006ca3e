package domain

import "errors"

var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrStoreNotConfigured = errors.New("link store not configured")
	ErrStoreUnavailable   = errors.New("link store unavailable")
	ErrInvalidDestination = errors.New("invalid destination url")
	ErrClickNotFound      = errors.New("click not found or no longer enrichable")
)

// Fallback reasons carried on the homepage redirect.
const (
	ReasonConfigError = "config-error"
	ReasonFetchError  = "fetch-error"
	ReasonNotFound    = "not-found"
	ReasonInvalidURL  = "invalid-url"
	ReasonError       = "error"
)

// FallbackReason maps a resolution or composition failure to its reason code.
func FallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrStoreNotConfigured):
		return ReasonConfigError
	case errors.Is(err, ErrStoreUnavailable):
		return ReasonFetchError
	case errors.Is(err, ErrLinkNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrInvalidDestination):
		return ReasonInvalidURL
	default:
		return ReasonError
	}
}
