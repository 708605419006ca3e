package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-redirector/internal/redirect/testutil"
	"go-redirector/internal/shared/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleEvent() events.ClickRecorded {
	return events.ClickRecorded{
		ClickID:     99,
		LinkID:      7,
		Slug:        "promo10",
		ClickedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		DeviceType:  "mobile",
		CountryCode: "DE",
		UTMSource:   "newsletter",
	}
}

func TestDaprPublisher_PublishClick(t *testing.T) {
	client := &testutil.MockDaprClient{}
	pub := NewDaprPublisher(client, "pubsub", "clicks")

	client.On("PublishEvent", mock.Anything, "pubsub", "clicks", mock.MatchedBy(func(data interface{}) bool {
		raw, ok := data.([]byte)
		if !ok {
			return false
		}
		var got events.ClickRecorded
		return json.Unmarshal(raw, &got) == nil && got.ClickID == 99 && got.Slug == "promo10"
	})).Return(nil)

	err := pub.PublishClick(context.Background(), sampleEvent())

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestDaprPublisher_PropagatesError(t *testing.T) {
	client := &testutil.MockDaprClient{}
	pub := NewDaprPublisher(client, "pubsub", "clicks")

	client.On("PublishEvent", mock.Anything, "pubsub", "clicks", mock.Anything).Return(errors.New("sidecar unavailable"))

	err := pub.PublishClick(context.Background(), sampleEvent())

	assert.EqualError(t, err, "sidecar unavailable")
}

func TestDaprPublisher_Close(t *testing.T) {
	client := &testutil.MockDaprClient{}
	client.On("Close").Return()

	require.NoError(t, NewDaprPublisher(client, "pubsub", "clicks").Close())
	client.AssertExpectations(t)
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishClick_KeyedByLink(t *testing.T) {
	w := &fakeWriter{}
	pub := NewKafkaPublisherWithWriter(w)

	require.NoError(t, pub.PublishClick(context.Background(), sampleEvent()))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "7", string(w.msgs[0].Key))

	var got events.ClickRecorded
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, sampleEvent(), got)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	pub := NewKafkaPublisherWithWriter(&fakeWriter{err: kafka.LeaderNotAvailable})

	err := pub.PublishClick(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, kafka.LeaderNotAvailable)
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &fakeWriter{}

	require.NoError(t, NewKafkaPublisherWithWriter(w).Close())
	assert.True(t, w.closed)
}

func TestNew(t *testing.T) {
	p, err := New(Config{Kind: KindNone})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, p)

	p, err = New(Config{Kind: KindKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "clicks"})
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, p)
	assert.NoError(t, p.Close())

	_, err = New(Config{Kind: "carrier-pigeon"})
	assert.Error(t, err)
}
