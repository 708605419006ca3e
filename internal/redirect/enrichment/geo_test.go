package enrichment

import (
	"errors"
	"net"
	"testing"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCityReader struct {
	record *geoip2.City
	err    error
	calls  int
}

func (f *fakeCityReader) City(net.IP) (*geoip2.City, error) {
	f.calls++
	return f.record, f.err
}

func TestGeoResolver_PrefersVercelHeaders(t *testing.T) {
	g := &GeoResolver{}

	geo := g.Resolve(map[string]string{
		HeaderVercelCountry:     "us",
		HeaderVercelRegion:      "CA",
		HeaderVercelCity:        "San%20Francisco",
		HeaderCloudflareCountry: "DE",
	}, "203.0.113.9")

	assert.Equal(t, Geo{CountryCode: "US", Region: "CA", City: "San Francisco"}, geo)
}

func TestGeoResolver_SkipsPlaceholderCountries(t *testing.T) {
	g := &GeoResolver{}

	geo := g.Resolve(map[string]string{
		HeaderCloudflareCountry: "XX",
		HeaderCloudFrontCountry: "FR",
	}, "")

	assert.Equal(t, "FR", geo.CountryCode)
}

func TestGeoResolver_FallsBackToDatabase(t *testing.T) {
	record := &geoip2.City{}
	record.Country.IsoCode = "DE"
	record.City.Names = map[string]string{"en": "Berlin"}
	reader := &fakeCityReader{record: record}
	g := &GeoResolver{db: reader}

	geo := g.Resolve(map[string]string{}, "198.51.100.4")

	assert.Equal(t, "DE", geo.CountryCode)
	assert.Equal(t, "Berlin", geo.City)
	assert.Equal(t, 1, reader.calls)
}

func TestGeoResolver_HeaderCountrySkipsDatabase(t *testing.T) {
	reader := &fakeCityReader{err: errors.New("should not be called")}
	g := &GeoResolver{db: reader}

	geo := g.Resolve(map[string]string{HeaderCloudflareCountry: "GB"}, "198.51.100.4")

	assert.Equal(t, "GB", geo.CountryCode)
	assert.Zero(t, reader.calls)
}

func TestGeoResolver_DatabaseErrorsYieldEmptyGeo(t *testing.T) {
	g := &GeoResolver{db: &fakeCityReader{err: errors.New("corrupt")}}

	assert.Equal(t, Geo{}, g.Resolve(nil, "198.51.100.4"))
	assert.Equal(t, Geo{}, g.Resolve(nil, "not-an-ip"))
}

func TestNewGeoResolver_MissingDatabaseDisablesFallback(t *testing.T) {
	g := NewGeoResolver("/nonexistent/GeoLite2-City.mmdb", zap.NewNop())

	assert.Nil(t, g.db)
	assert.NoError(t, g.Close())
}
