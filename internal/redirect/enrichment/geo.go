package enrichment

import (
	"net"
	"net/url"
	"strings"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
)

// Edge geography headers, lower-case. Vercel headers are preferred, then
// Cloudflare, then CloudFront.
const (
	HeaderVercelCountry     = "x-vercel-ip-country"
	HeaderVercelRegion      = "x-vercel-ip-country-region"
	HeaderVercelCity        = "x-vercel-ip-city"
	HeaderCloudflareCountry = "cf-ipcountry"
	HeaderCloudFrontCountry = "cloudfront-viewer-country"
	HeaderCloudFrontRegion  = "cloudfront-viewer-country-region"
	HeaderCloudFrontCity    = "cloudfront-viewer-city"
)

// GeoHeaderNames lists every header the resolver reads.
var GeoHeaderNames = []string{
	HeaderVercelCountry,
	HeaderVercelRegion,
	HeaderVercelCity,
	HeaderCloudflareCountry,
	HeaderCloudFrontCountry,
	HeaderCloudFrontRegion,
	HeaderCloudFrontCity,
}

// Geo is a best-effort location.
type Geo struct {
	CountryCode string
	Region      string
	City        string
}

type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
}

// GeoResolver resolves location from edge headers, falling back to a GeoIP2
// database lookup when no header carries a country.
type GeoResolver struct {
	db     cityReader
	closer func() error
}

// NewGeoResolver creates a resolver. An empty dbPath disables the database
// fallback; an unreadable one is logged and likewise disabled.
func NewGeoResolver(dbPath string, logger *zap.Logger) *GeoResolver {
	if dbPath == "" {
		return &GeoResolver{}
	}

	db, err := geoip2.Open(dbPath)
	if err != nil {
		logger.Warn("GeoIP database not available, header-only geo resolution",
			zap.String("path", dbPath),
			zap.Error(err),
		)
		return &GeoResolver{}
	}

	logger.Info("GeoIP database loaded", zap.String("path", dbPath))
	return &GeoResolver{db: db, closer: db.Close}
}

// Close releases the GeoIP database, if any.
func (g *GeoResolver) Close() error {
	if g.closer == nil {
		return nil
	}
	return g.closer()
}

// Resolve returns the location for a request. headers are keyed by lower-case name.
func (g *GeoResolver) Resolve(headers map[string]string, clientIP string) Geo {
	geo := Geo{
		CountryCode: firstCountry(headers, HeaderVercelCountry, HeaderCloudflareCountry, HeaderCloudFrontCountry),
		Region:      firstValue(headers, HeaderVercelRegion, HeaderCloudFrontRegion),
		City:        firstValue(headers, HeaderVercelCity, HeaderCloudFrontCity),
	}

	if geo.CountryCode != "" || g.db == nil {
		return geo
	}

	ip := net.ParseIP(clientIP)
	if ip == nil {
		return geo
	}

	record, err := g.db.City(ip)
	if err != nil || record.Country.IsoCode == "" {
		return geo
	}

	geo.CountryCode = record.Country.IsoCode
	if len(record.Subdivisions) > 0 {
		geo.Region = record.Subdivisions[0].IsoCode
	}
	geo.City = record.City.Names["en"]
	return geo
}

// firstCountry skips the placeholder codes edges send for unknown or Tor traffic.
func firstCountry(headers map[string]string, names ...string) string {
	for _, name := range names {
		code := strings.ToUpper(strings.TrimSpace(headers[name]))
		if code == "" || code == "XX" || code == "T1" {
			continue
		}
		return code
	}
	return ""
}

// firstValue returns the first non-empty header, URL-decoded (Vercel encodes city names).
func firstValue(headers map[string]string, names ...string) string {
	for _, name := range names {
		v := strings.TrimSpace(headers[name])
		if v == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(v); err == nil {
			return decoded
		}
		return v
	}
	return ""
}
