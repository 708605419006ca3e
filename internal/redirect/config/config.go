// Package config loads the redirect service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the full service configuration.
type Config struct {
	AppEnv      string `env:"APP_ENV" env-default:"local" env-description:"local selects development logging"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	Port        string `env:"PORT" env-default:"8080"`
	BaseURL     string `env:"BASE_URL" env-default:"http://localhost:8080" env-description:"site base url for relative destinations and the fallback redirect"`
	DatabaseURL string `env:"DATABASE_URL" env-default:"data/redirect.db" env-description:"sqlite path, libsql:// or postgres:// url"`

	CacheTTL        time.Duration `env:"CACHE_TTL" env-default:"60s"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"60s"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" env-default:"100"`

	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" env-default:"false" env-description:"take the client ip from X-Forwarded-For/X-Real-IP; enable only behind a proxy that sets them"`

	ClickLogMode        string        `env:"CLICK_LOG_MODE" env-default:"blocking" env-description:"blocking or deferred"`
	ClickWriteTimeout   time.Duration `env:"CLICK_WRITE_TIMEOUT" env-default:"2s"`
	EnrichTimeout       time.Duration `env:"ENRICH_TIMEOUT" env-default:"5s"`
	EnrichRecencyWindow time.Duration `env:"ENRICH_RECENCY_WINDOW" env-default:"10m"`
	IPHashSalt          string        `env:"IP_HASH_SALT"`
	GeoIPDBPath         string        `env:"GEOIP_DB_PATH"`

	ClickPublisher string   `env:"CLICK_PUBLISHER" env-default:"none" env-description:"none, dapr or kafka"`
	DaprPubSub     string   `env:"DAPR_PUBSUB" env-default:"pubsub"`
	DaprTopic      string   `env:"DAPR_TOPIC" env-default:"clicks"`
	KafkaBrokers   []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	KafkaTopic     string   `env:"KAFKA_TOPIC" env-default:"clicks"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads an optional .env file, then the environment, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional outside local development

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AppEnv, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.BaseURL, validation.Required, is.URL, validation.By(httpURL)),
		validation.Field(&c.CacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.RateLimitWindow, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RateLimitMax, validation.Required, validation.Min(1)),
		validation.Field(&c.ClickLogMode, validation.Required, validation.In("blocking", "deferred")),
		validation.Field(&c.ClickWriteTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.EnrichTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.EnrichRecencyWindow, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.ClickPublisher, validation.In("none", "dapr", "kafka")),
		validation.Field(&c.DaprTopic, validation.When(c.ClickPublisher == "dapr", validation.Required)),
		validation.Field(&c.KafkaBrokers, validation.When(c.ClickPublisher == "kafka", validation.Required)),
		validation.Field(&c.KafkaTopic, validation.When(c.ClickPublisher == "kafka", validation.Required)),
		validation.Field(&c.ShutdownTimeout, validation.Required),
	)
}

// ParsedBaseURL returns BaseURL as a URL. Validate guarantees it parses.
func (c *Config) ParsedBaseURL() *url.URL {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return &url.URL{Path: "/"}
	}
	return u
}

// IsLocal reports whether development logging applies.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an http or https url")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
