package events

import "time"

// ClickRecordedTopic is the default topic for ClickRecorded notifications.
const ClickRecordedTopic = "clicks"

// ClickRecorded is published after a redirect click has been stored and enriched.
// Consumed by downstream analytics. It never carries the raw client IP.
type ClickRecorded struct {
	ClickID       int64     `json:"click_id"`
	LinkID        int64     `json:"link_id"`
	Slug          string    `json:"slug"`
	ClickedAt     time.Time `json:"clicked_at"`
	IsBot         bool      `json:"is_bot"`
	DeviceType    string    `json:"device_type,omitempty"`
	Browser       string    `json:"browser,omitempty"`
	OS            string    `json:"os,omitempty"`
	CountryCode   string    `json:"country_code,omitempty"`
	TrafficSource string    `json:"traffic_source,omitempty"`
	UTMSource     string    `json:"utm_source,omitempty"`
	UTMMedium     string    `json:"utm_medium,omitempty"`
	UTMCampaign   string    `json:"utm_campaign,omitempty"`
}
