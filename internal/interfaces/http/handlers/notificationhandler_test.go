package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers/testutil"
	"github.com/prism-finance/prism/internal/shared/errors"
)

type mockNotificationService struct {
	listFn          func(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error)
	markAsReadFn    func(ctx context.Context, id, userID string) (*dto.NotificationDTO, error)
	markAllAsReadFn func(ctx context.Context, userID string) (int64, error)
	deleteFn        func(ctx context.Context, id, userID string) error
	unreadCountFn   func(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
}

func (m *mockNotificationService) List(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return &dto.ListNotificationsResponse{Items: []*dto.NotificationDTO{}}, nil
}

func (m *mockNotificationService) MarkAsRead(ctx context.Context, id, userID string) (*dto.NotificationDTO, error) {
	if m.markAsReadFn != nil {
		return m.markAsReadFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	if m.markAllAsReadFn != nil {
		return m.markAllAsReadFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationService) Delete(ctx context.Context, id, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	if m.unreadCountFn != nil {
		return m.unreadCountFn(ctx, userID)
	}
	return &dto.UnreadCountResponse{}, nil
}

func TestNotificationHandler_List(t *testing.T) {
	t.Run("scopes to the caller and honours unread_only", func(t *testing.T) {
		var got dto.ListNotificationsRequest
		svc := &mockNotificationService{
			listFn: func(_ context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
				got = req
				return &dto.ListNotificationsResponse{
					Items:    []*dto.NotificationDTO{{ID: "ntf_1", Type: "contract_generated"}},
					Total:    1,
					Page:     1,
					PageSize: 20,
				}, nil
			},
		}
		h := NewNotificationHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
		testutil.SetIdentity(c, testSupplier)
		testutil.SetQueryParams(c, map[string]string{"unread_only": "true"})

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "usr_supp", got.UserID)
		assert.True(t, got.UnreadOnly)
	})

	t.Run("bad boolean is a validation error", func(t *testing.T) {
		h := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
		testutil.SetIdentity(c, testSupplier)
		testutil.SetQueryParams(c, map[string]string{"unread_only": "maybe"})

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	svc := &mockNotificationService{
		unreadCountFn: func(_ context.Context, userID string) (*dto.UnreadCountResponse, error) {
			assert.Equal(t, "usr_admin", userID)
			return &dto.UnreadCountResponse{Count: 3}, nil
		},
	}
	h := NewNotificationHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/notifications/unread-count", nil)
	testutil.SetIdentity(c, testAdmin)

	h.UnreadCount(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data dto.UnreadCountResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.EqualValues(t, 3, data.Count)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("someone else's notification is not found", func(t *testing.T) {
		svc := &mockNotificationService{
			markAsReadFn: func(_ context.Context, id, userID string) (*dto.NotificationDTO, error) {
				assert.Equal(t, "ntf_other", id)
				assert.Equal(t, "usr_admin", userID)
				return nil, errors.NewNotFoundError("notification not found")
			},
		}
		h := NewNotificationHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/notifications/ntf_other/read", nil)
		testutil.SetIdentity(c, testAdmin)
		testutil.SetURLParam(c, "id", "ntf_other")

		h.MarkRead(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mark all returns the updated count", func(t *testing.T) {
		svc := &mockNotificationService{
			markAllAsReadFn: func(context.Context, string) (int64, error) { return 4, nil },
		}
		h := NewNotificationHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/notifications/read-all", nil)
		testutil.SetIdentity(c, testAdmin)

		h.MarkAllRead(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":4`)
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	deleted := ""
	svc := &mockNotificationService{
		deleteFn: func(_ context.Context, id, _ string) error {
			deleted = id
			return nil
		},
	}
	h := NewNotificationHandler(svc, testutil.NewMockLogger())
	c, _ := testutil.NewTestContext(http.MethodDelete, "/notifications/ntf_1", nil)
	testutil.SetIdentity(c, testAdmin)
	testutil.SetURLParam(c, "id", "ntf_1")

	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, "ntf_1", deleted)
}
