package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type published struct {
	channel string
	payload []byte
}

type fakePublisher struct {
	calls []published
	err   error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.calls = append(f.calls, published{channel: channel, payload: message.([]byte)})
	cmd.SetVal(1)
	return cmd
}

func sampleEvent() notification.CreatedEvent {
	return notification.CreatedEvent{
		BaseEvent:      events.BaseEvent{AggregateID: "ntf_9", EventType: notification.EventTypeCreated, Version: 1},
		NotificationID: "ntf_9",
		UserID:         "usr_42",
		CompanyID:      "cmp_1",
		Type:           notification.TypeContractSigned,
		Title:          "Contract signed",
		TargetID:       "ctr_7",
		TargetType:     "contract",
	}
}

func TestNotificationChannel(t *testing.T) {
	assert.Equal(t, "prism:notifications:usr_42", NotificationChannel("usr_42"))
}

func TestRedisNotificationPublisher_PublishesToUserChannel(t *testing.T) {
	client := &fakePublisher{}
	p := NewRedisNotificationPublisher(client, logger.NewDiscard())

	require.NoError(t, p.Handler().Handle(sampleEvent()))
	require.Len(t, client.calls, 1)
	assert.Equal(t, "prism:notifications:usr_42", client.calls[0].channel)

	var body map[string]any
	require.NoError(t, json.Unmarshal(client.calls[0].payload, &body))
	assert.Equal(t, "ntf_9", body["notification_id"])
	assert.Equal(t, "contract_signed", body["type"])
	assert.Equal(t, notification.EventTypeCreated, body["event_type"])
}

func TestRedisNotificationPublisher_ReturnsError(t *testing.T) {
	client := &fakePublisher{err: errors.New("redis down")}
	p := NewRedisNotificationPublisher(client, logger.NewDiscard())

	err := p.Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
