package domain

import "time"

// Device types reported by enrichment.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// RequestMeta is the part of an incoming request the click pipeline needs.
// It is captured on the request goroutine because the *http.Request must not
// be touched once the redirect has been written.
type RequestMeta struct {
	ClientIP  string              `json:"client_ip"`
	UserAgent string              `json:"user_agent"`
	Referer   string              `json:"referer"`
	Query     map[string][]string `json:"query"`
	// GeoHeaders holds edge-provided geography headers, keyed by lower-case name.
	GeoHeaders map[string]string `json:"geo_headers,omitempty"`
}

// ClickEvent is one persisted redirect. ID is zero until the row is inserted.
type ClickEvent struct {
	ID          int64     `json:"id"`
	LinkID      int64     `json:"link_id"`
	ClickedAt   time.Time `json:"clicked_at"`
	IPHash      string    `json:"ip_hash"`
	UserAgent   string    `json:"user_agent"`
	ReferrerURL string    `json:"referrer_url"`
	IsBot       bool      `json:"is_bot"`
	BotReason   string    `json:"bot_reason,omitempty"`
	UTMSource   string    `json:"utm_source,omitempty"`
	UTMMedium   string    `json:"utm_medium,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty"`
	UTMTerm     string    `json:"utm_term,omitempty"`
	UTMContent  string    `json:"utm_content,omitempty"`
}

// Enrichment holds the derived fields patched onto a click after the response.
type Enrichment struct {
	DeviceType    string `json:"device_type"`
	Browser       string `json:"browser"`
	OS            string `json:"os"`
	CountryCode   string `json:"country_code"`
	Region        string `json:"region"`
	City          string `json:"city"`
	TrafficSource string `json:"traffic_source"`
	QueryParams   string `json:"query_params"`
}
