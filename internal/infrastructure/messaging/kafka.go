// Package messaging relays domain events to Kafka for downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const DefaultNotificationTopic = "prism.notifications"

const writeTimeout = 5 * time.Second

// MessageWriter is the slice of *kafka.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotificationProducer writes notification.created events to a topic,
// keyed by company so one tenant's events stay ordered.
type KafkaNotificationProducer struct {
	writer MessageWriter
	logger logger.Interface
}

// NewKafkaWriter builds an async batching writer bound to topic.
func NewKafkaWriter(brokers []string, topic string, log logger.Interface) *kafka.Writer {
	if topic == "" {
		topic = DefaultNotificationTopic
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Errorw("failed to deliver notification events", "count", len(messages), "error", err)
			}
		},
	}
}

func NewKafkaNotificationProducer(writer MessageWriter, logger logger.Interface) *KafkaNotificationProducer {
	return &KafkaNotificationProducer{
		writer: writer,
		logger: logger,
	}
}

// Handler returns the event handler to subscribe on the dispatcher.
func (p *KafkaNotificationProducer) Handler() events.EventHandler {
	return events.NewSimpleEventHandler(notification.EventTypeCreated, func(event events.DomainEvent) error {
		evt, ok := event.(notification.CreatedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload %T", event)
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return p.Send(ctx, evt)
	})
}

func (p *KafkaNotificationProducer) Send(ctx context.Context, evt notification.CreatedEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.CompanyID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.GetEventType())},
			{Key: "notification_type", Value: []byte(evt.Type)},
			{Key: "user_id", Value: []byte(evt.UserID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Errorw("failed to write notification event to Kafka",
			"notification_id", evt.NotificationID,
			"error", err,
		)
		return fmt.Errorf("failed to write notification event: %w", err)
	}
	return nil
}

func (p *KafkaNotificationProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	return nil
}
