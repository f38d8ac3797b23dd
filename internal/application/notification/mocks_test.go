package notification

import (
	"context"
	"sync"
	"time"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/shared/events"
	"github.com/prism-finance/prism/internal/domain/user"
)

type mockRecipientFinder struct {
	FindActiveFunc func(ctx context.Context, filter user.ListFilter) ([]*user.User, error)
}

func (m *mockRecipientFinder) FindActive(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, filter)
	}
	return nil, nil
}

type mockNotificationRepository struct {
	BulkCreateFunc func(ctx context.Context, items []*notification.Notification) error
	created        []*notification.Notification
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, items []*notification.Notification) error {
	if m.BulkCreateFunc != nil {
		if err := m.BulkCreateFunc(ctx, items); err != nil {
			return err
		}
	}
	m.created = append(m.created, items...)
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id string) error {
	return nil
}

type mockPublisher struct {
	mu        sync.Mutex
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}
