package enrichment

import (
	"net/url"
	"strings"
)

// Traffic sources.
const (
	SourceSearch   = "Search"
	SourceSocial   = "Social"
	SourceAI       = "AI"
	SourceDirect   = "Direct"
	SourceReferral = "Referral"
)

type sourceRule struct {
	source  string
	domains []string
}

// RefererClassifier classifies traffic sources from referer URLs.
type RefererClassifier struct {
	rules []sourceRule
}

// NewRefererClassifier creates a new RefererClassifier with predefined domain lists.
// AI platforms are checked first because gemini.google.com would otherwise count as search.
func NewRefererClassifier() *RefererClassifier {
	return &RefererClassifier{
		rules: []sourceRule{
			{SourceAI, []string{"chatgpt.com", "chat.openai.com", "claude.ai", "gemini.google.com", "perplexity.ai", "copilot.microsoft.com"}},
			{SourceSearch, []string{"google.com", "bing.com", "yahoo.com", "duckduckgo.com", "baidu.com", "yandex.ru", "ecosia.org"}},
			{SourceSocial, []string{"facebook.com", "t.co", "twitter.com", "x.com", "instagram.com", "linkedin.com", "lnkd.in", "pinterest.com", "reddit.com", "tiktok.com", "youtube.com", "threads.net", "mastodon.social"}},
		},
	}
}

// ClassifySource returns Search, Social, AI, Direct or Referral.
func (r *RefererClassifier) ClassifySource(refererStr string) string {
	if refererStr == "" {
		return SourceDirect
	}

	parsed, err := url.Parse(refererStr)
	if err != nil || parsed.Hostname() == "" {
		return SourceDirect
	}

	hostname := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	for _, rule := range r.rules {
		for _, d := range rule.domains {
			if hostname == d || strings.HasSuffix(hostname, "."+d) {
				return rule.source
			}
		}
	}

	return SourceReferral
}
