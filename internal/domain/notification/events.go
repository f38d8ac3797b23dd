package notification

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/shared/events"
)

const EventTypeCreated = "notification.created"

// CreatedEvent is published once per stored notification. Recipient
// contact details travel with it so sinks need no extra lookups.
type CreatedEvent struct {
	events.BaseEvent
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	CompanyID      string `json:"company_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
	Type           Type   `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	TargetID       string `json:"target_id,omitempty"`
	TargetType     string `json:"target_type,omitempty"`
}

func NewCreatedEvent(n *Notification, email, name string) CreatedEvent {
	return CreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: n.ID(),
			EventType:   EventTypeCreated,
			OccurredAt:  time.Now().UTC(),
			Version:     1,
		},
		NotificationID: n.ID(),
		UserID:         n.UserID(),
		CompanyID:      n.CompanyID(),
		RecipientEmail: email,
		RecipientName:  name,
		Type:           n.Type(),
		Title:          n.Title(),
		Message:        n.Message(),
		TargetID:       n.TargetID(),
		TargetType:     n.TargetType(),
	}
}
