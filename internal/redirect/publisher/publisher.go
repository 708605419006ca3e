// Package publisher notifies downstream consumers about processed clicks.
package publisher

import (
	"context"
	"fmt"

	"go-redirector/internal/redirect/usecase"
	"go-redirector/internal/shared/events"
)

// Kinds accepted by New.
const (
	KindNone  = "none"
	KindDapr  = "dapr"
	KindKafka = "kafka"
)

// Publisher is a usecase.ClickPublisher that owns a connection.
type Publisher interface {
	usecase.ClickPublisher
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) PublishClick(context.Context, events.ClickRecorded) error { return nil }

func (Noop) Close() error { return nil }

// Config selects and configures a publisher.
type Config struct {
	Kind         string
	DaprPubSub   string
	DaprTopic    string
	KafkaBrokers []string
	KafkaTopic   string
}

// New builds the publisher named by cfg.Kind.
func New(cfg Config) (Publisher, error) {
	switch cfg.Kind {
	case "", KindNone:
		return Noop{}, nil
	case KindDapr:
		return NewDaprPublisherFromEnv(cfg.DaprPubSub, cfg.DaprTopic)
	case KindKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return nil, fmt.Errorf("unknown click publisher %q", cfg.Kind)
	}
}
