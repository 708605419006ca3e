package enrichment

import (
	"testing"

	"go-redirector/internal/redirect/domain"

	ua "github.com/mileusna/useragent"
	"github.com/stretchr/testify/assert"
)

func TestDeviceDetector_Detect(t *testing.T) {
	d := NewDeviceDetector()

	tests := []struct {
		name        string
		ua          string
		wantType    string
		wantBrowser string
		wantOS      string
	}{
		{
			name:        "windows chrome",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			wantType:    domain.DeviceDesktop,
			wantBrowser: ua.Chrome,
			wantOS:      ua.Windows,
		},
		{
			name:        "iphone safari",
			ua:          "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
			wantType:    domain.DeviceMobile,
			wantBrowser: ua.Safari,
			wantOS:      ua.IOS,
		},
		{
			name:        "ipad safari",
			ua:          "Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
			wantType:    domain.DeviceTablet,
			wantBrowser: ua.Safari,
			wantOS:      ua.IOS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.ua)

			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantBrowser, got.Browser)
			assert.Equal(t, tt.wantOS, got.OS)
		})
	}
}

func TestDeviceDetector_Detect_Bots(t *testing.T) {
	d := NewDeviceDetector()

	assert.Equal(t, domain.DeviceBot, d.Detect("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)").Type)
	assert.Equal(t, domain.DeviceBot, d.Detect("curl/8.4.0").Type, "tooling caught by the bot classifier")
}

func TestDeviceDetector_Detect_Empty(t *testing.T) {
	got := NewDeviceDetector().Detect("")

	assert.Equal(t, Device{Type: domain.DeviceUnknown}, got)
}
