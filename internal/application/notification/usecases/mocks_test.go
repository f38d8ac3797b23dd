package usecases

import (
	"context"
	"time"

	"github.com/prism-finance/prism/internal/domain/notification"
)

type mockNotificationRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*notification.Notification, error)
	ListByUserFunc    func(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error)
	CountUnreadFunc   func(ctx context.Context, userID string) (int64, error)
	MarkAsReadFunc    func(ctx context.Context, id string, at time.Time) error
	MarkAllAsReadFunc func(ctx context.Context, userID string, at time.Time) (int64, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, items []*notification.Notification) error {
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id string, at time.Time) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id, at)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID, at)
	}
	return 0, nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
