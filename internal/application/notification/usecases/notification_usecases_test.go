package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/domain/notification"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

func ownedNotification(t *testing.T, userID string) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(notification.NewNotificationParams{
		UserID: userID,
		Type:   notification.TypeDocumentUploaded,
		Title:  "Document uploaded",
		Now:    time.Now(),
	})
	require.NoError(t, err)
	return n
}

func TestMarkNotificationAsRead(t *testing.T) {
	n := ownedNotification(t, "usr_1")
	var marked string
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*notification.Notification, error) { return n, nil },
		MarkAsReadFunc: func(ctx context.Context, id string, at time.Time) error {
			marked = id
			return nil
		},
	}

	uc := NewMarkNotificationAsReadUseCase(repo, logger.NewDiscard())

	result, err := uc.Execute(context.Background(), n.ID(), "usr_1")
	require.NoError(t, err)
	assert.True(t, result.Read)
	assert.NotNil(t, result.ReadAt)
	assert.Equal(t, n.ID(), marked)
}

func TestMarkNotificationAsRead_OtherUserIsNotFound(t *testing.T) {
	n := ownedNotification(t, "usr_1")
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*notification.Notification, error) { return n, nil },
		MarkAsReadFunc: func(ctx context.Context, id string, at time.Time) error {
			t.Error("must not update")
			return nil
		},
	}

	_, err := NewMarkNotificationAsReadUseCase(repo, logger.NewDiscard()).Execute(context.Background(), n.ID(), "usr_2")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteNotification(t *testing.T) {
	n := ownedNotification(t, "usr_1")
	deleted := false
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*notification.Notification, error) { return n, nil },
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	uc := NewDeleteNotificationUseCase(repo, logger.NewDiscard())

	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), n.ID(), "usr_2")))
	assert.False(t, deleted)

	require.NoError(t, uc.Execute(context.Background(), n.ID(), "usr_1"))
	assert.True(t, deleted)
}

func TestDeleteNotification_Missing(t *testing.T) {
	uc := NewDeleteNotificationUseCase(&mockNotificationRepository{}, logger.NewDiscard())
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), "ntf_x", "usr_1")))
}

func TestListNotifications(t *testing.T) {
	n := ownedNotification(t, "usr_1")
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, f notification.ListFilter) ([]*notification.Notification, int64, error) {
			assert.Equal(t, "usr_1", f.UserID)
			assert.True(t, f.UnreadOnly)
			return []*notification.Notification{n}, 1, nil
		},
	}

	resp, err := NewListNotificationsUseCase(repo, logger.NewDiscard()).Execute(context.Background(), dto.ListNotificationsRequest{
		UserID: "usr_1", UnreadOnly: true, Page: 1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "document_uploaded", resp.Items[0].Type)
}

func TestListNotifications_RepositoryError(t *testing.T) {
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, f notification.ListFilter) ([]*notification.Notification, int64, error) {
			return nil, 0, errors.New("db down")
		},
	}
	_, err := NewListNotificationsUseCase(repo, logger.NewDiscard()).Execute(context.Background(), dto.ListNotificationsRequest{UserID: "usr_1"})
	assert.Error(t, err)
	assert.NotNil(t, apperrors.GetAppError(err))
}

func TestUnreadCountAndMarkAll(t *testing.T) {
	repo := &mockNotificationRepository{
		CountUnreadFunc:   func(ctx context.Context, userID string) (int64, error) { return 4, nil },
		MarkAllAsReadFunc: func(ctx context.Context, userID string, at time.Time) (int64, error) { return 4, nil },
	}

	count, err := NewGetUnreadCountUseCase(repo, logger.NewDiscard()).Execute(context.Background(), "usr_1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count.Count)

	updated, err := NewMarkAllAsReadUseCase(repo, logger.NewDiscard()).Execute(context.Background(), "usr_1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}
