package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"time"
	"unicode/utf8"

	"go-redirector/internal/redirect/botdetect"
	"go-redirector/internal/redirect/domain"
)

// Bounds on free-text click fields.
const (
	MaxUserAgentLength = 512
	MaxReferrerLength  = 2048
	MaxUTMLength       = 256
)

// ClickRecorder builds click events. It holds no store; persistence belongs to a ClickSink.
type ClickRecorder struct {
	salt string
	now  func() time.Time
}

// NewClickRecorder creates a recorder that mixes salt into every IP hash.
func NewClickRecorder(salt string) *ClickRecorder {
	return &ClickRecorder{salt: salt, now: time.Now}
}

// Build creates the minimal click event for an accepted request. resolved is the
// parameter set actually applied to the destination, so the UTM snapshot reflects
// the request value when present and the link default otherwise.
func (r *ClickRecorder) Build(meta domain.RequestMeta, link *domain.Link, resolved url.Values) domain.ClickEvent {
	bot := botdetect.Classify(meta.UserAgent)

	return domain.ClickEvent{
		LinkID:      link.ID,
		ClickedAt:   r.now().UTC(),
		IPHash:      r.HashIP(meta.ClientIP),
		UserAgent:   truncate(meta.UserAgent, MaxUserAgentLength),
		ReferrerURL: truncate(meta.Referer, MaxReferrerLength),
		IsBot:       bot.IsBot,
		BotReason:   bot.Reason,
		UTMSource:   truncate(resolved.Get(domain.UTMSource), MaxUTMLength),
		UTMMedium:   truncate(resolved.Get(domain.UTMMedium), MaxUTMLength),
		UTMCampaign: truncate(resolved.Get(domain.UTMCampaign), MaxUTMLength),
		UTMTerm:     truncate(resolved.Get(domain.UTMTerm), MaxUTMLength),
		UTMContent:  truncate(resolved.Get(domain.UTMContent), MaxUTMLength),
	}
}

// HashIP returns the hex SHA-256 of salt and ip. The raw address is never stored.
func (r *ClickRecorder) HashIP(ip string) string {
	if ip == "" {
		ip = "unknown"
	}
	sum := sha256.Sum256([]byte(r.salt + ip))
	return hex.EncodeToString(sum[:])
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
