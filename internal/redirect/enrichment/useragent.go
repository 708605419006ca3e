package enrichment

import (
	"strings"

	"go-redirector/internal/redirect/botdetect"
	"go-redirector/internal/redirect/domain"

	ua "github.com/mileusna/useragent"
)

// Device is the device/browser/OS breakdown of one user agent.
type Device struct {
	Type    string
	Browser string
	OS      string
}

// DeviceDetector derives device type, browser and OS from User-Agent strings.
type DeviceDetector struct{}

// NewDeviceDetector creates a new DeviceDetector.
func NewDeviceDetector() *DeviceDetector {
	return &DeviceDetector{}
}

// Detect parses uaString. Empty input yields an unknown device with no browser or OS.
func (d *DeviceDetector) Detect(uaString string) Device {
	if strings.TrimSpace(uaString) == "" {
		return Device{Type: domain.DeviceUnknown}
	}

	parsed := ua.Parse(uaString)
	device := Device{
		Browser: parsed.Name,
		OS:      parsed.OS,
	}

	switch {
	case parsed.Bot || botdetect.Classify(uaString).IsBot:
		device.Type = domain.DeviceBot
	case parsed.Tablet:
		device.Type = domain.DeviceTablet
	case parsed.Mobile:
		device.Type = domain.DeviceMobile
	case parsed.Desktop:
		device.Type = domain.DeviceDesktop
	default:
		device.Type = domain.DeviceUnknown
	}

	return device
}
