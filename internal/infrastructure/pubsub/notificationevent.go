package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const notificationChannelPrefix = "prism:notifications:"

const publishTimeout = 5 * time.Second

// NotificationChannel is the per-user channel live clients subscribe to.
func NotificationChannel(userID string) string {
	return notificationChannelPrefix + userID
}

// Publisher is the slice of *redis.Client used here.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotificationPublisher relays notification.created events to Redis.
type RedisNotificationPublisher struct {
	client Publisher
	logger logger.Interface
}

func NewRedisNotificationPublisher(client Publisher, logger logger.Interface) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		client: client,
		logger: logger,
	}
}

// Handler returns the event handler to subscribe on the dispatcher.
func (p *RedisNotificationPublisher) Handler() events.EventHandler {
	return events.NewSimpleEventHandler(notification.EventTypeCreated, func(event events.DomainEvent) error {
		evt, ok := event.(notification.CreatedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload %T", event)
		}
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		return p.Publish(ctx, evt)
	})
}

func (p *RedisNotificationPublisher) Publish(ctx context.Context, evt notification.CreatedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	channel := NotificationChannel(evt.UserID)
	receivers, err := p.client.Publish(ctx, channel, data).Result()
	if err != nil {
		p.logger.Errorw("failed to publish notification",
			"notification_id", evt.NotificationID,
			"channel", channel,
			"error", err,
		)
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debugw("notification published to Redis",
		"notification_id", evt.NotificationID,
		"channel", channel,
		"receivers", receivers,
	)
	return nil
}
