package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"go-redirector/internal/shared/events"

	dapr "github.com/dapr/go-sdk/client"
)

// DaprClient is the part of the Dapr client used for publishing.
type DaprClient interface {
	PublishEvent(ctx context.Context, pubsubName, topicName string, data interface{}, opts ...dapr.PublishEventOption) error
	Close()
}

// DaprPublisher publishes ClickRecorded events to a Dapr pub/sub component.
type DaprPublisher struct {
	client DaprClient
	pubsub string
	topic  string
}

// NewDaprPublisher wraps an existing Dapr client.
func NewDaprPublisher(client DaprClient, pubsub, topic string) *DaprPublisher {
	return &DaprPublisher{client: client, pubsub: pubsub, topic: topic}
}

// NewDaprPublisherFromEnv connects to the sidecar named by the DAPR_* environment.
func NewDaprPublisherFromEnv(pubsub, topic string) (*DaprPublisher, error) {
	client, err := dapr.NewClient()
	if err != nil {
		return nil, fmt.Errorf("connect to dapr sidecar: %w", err)
	}
	return NewDaprPublisher(client, pubsub, topic), nil
}

// PublishClick publishes event as JSON.
func (p *DaprPublisher) PublishClick(ctx context.Context, event events.ClickRecorded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.PublishEvent(ctx, p.pubsub, p.topic, data, dapr.PublishEventWithContentType("application/json"))
}

func (p *DaprPublisher) Close() error {
	p.client.Close()
	return nil
}
