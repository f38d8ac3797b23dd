package notification

import (
	"context"
	"time"
)

type Repository interface {
	BulkCreate(ctx context.Context, notifications []*Notification) error
	// GetByID returns nil, nil when the notification does not exist.
	GetByID(ctx context.Context, id string) (*Notification, error)
	ListByUser(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkAsRead(ctx context.Context, id string, at time.Time) error
	MarkAllAsRead(ctx context.Context, userID string, at time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	UserID     string
	UnreadOnly bool
	Page       int
	PageSize   int
}
