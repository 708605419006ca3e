package domain

// UTM parameter names, in the order they are applied.
const (
	UTMSource   = "utm_source"
	UTMMedium   = "utm_medium"
	UTMCampaign = "utm_campaign"
	UTMTerm     = "utm_term"
	UTMContent  = "utm_content"
)

// UTMKeys lists the five attribution parameters.
var UTMKeys = []string{UTMSource, UTMMedium, UTMCampaign, UTMTerm, UTMContent}

// Link is a short link owned by the link-management service. This subsystem only reads it.
type Link struct {
	ID             int64  `json:"id"`
	Slug           string `json:"slug"`
	DestinationURL string `json:"destination_url"`
	AppendUTMs     bool   `json:"append_utms"`
	UTMSource      string `json:"utm_source,omitempty"`
	UTMMedium      string `json:"utm_medium,omitempty"`
	UTMCampaign    string `json:"utm_campaign,omitempty"`
	UTMTerm        string `json:"utm_term,omitempty"`
	UTMContent     string `json:"utm_content,omitempty"`
	Active         bool   `json:"active"`
}

// UTMDefaults returns the configured default for each UTM key. Unset keys are omitted.
func (l *Link) UTMDefaults() map[string]string {
	defaults := make(map[string]string, len(UTMKeys))
	for key, value := range map[string]string{
		UTMSource:   l.UTMSource,
		UTMMedium:   l.UTMMedium,
		UTMCampaign: l.UTMCampaign,
		UTMTerm:     l.UTMTerm,
		UTMContent:  l.UTMContent,
	} {
		if value != "" {
			defaults[key] = value
		}
	}
	return defaults
}
