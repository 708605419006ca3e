package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefererClassifier_ClassifySource(t *testing.T) {
	r := NewRefererClassifier()

	tests := []struct {
		referer string
		want    string
	}{
		{"", SourceDirect},
		{"::not a url", SourceDirect},
		{"https://www.google.com/search?q=deal", SourceSearch},
		{"https://duckduckgo.com/", SourceSearch},
		{"https://t.co/abc123", SourceSocial},
		{"https://m.facebook.com/story", SourceSocial},
		{"https://x.com/someone/status/1", SourceSocial},
		{"https://gemini.google.com/app", SourceAI},
		{"https://chatgpt.com/c/1", SourceAI},
		{"https://box.com/file", SourceReferral},
		{"https://blog.example.org/post", SourceReferral},
	}

	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ClassifySource(tt.referer))
		})
	}
}
