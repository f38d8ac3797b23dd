package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/shared/id"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type notificationService interface {
	List(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error)
	MarkAsRead(ctx context.Context, id, userID string) (*dto.NotificationDTO, error)
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id, userID string) error
	UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
}

// NotificationHandler only ever touches the caller's own notifications.
type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	unreadOnly, err := utils.ParseBoolQuery(c, "unread_only")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.List(c.Request.Context(), dto.ListNotificationsRequest{
		UserID:     identity.UserID,
		UnreadOnly: unreadOnly,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.UnreadCount(c.Request.Context(), identity.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseSIDParam(c, "id", id.PrefixNotification, "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.MarkAsRead(c.Request.Context(), notificationID, identity.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllAsRead(c.Request.Context(), identity.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Debugw("notifications marked as read", "user_id", identity.UserID, "count", updated)
	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", gin.H{"updated": updated})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseSIDParam(c, "id", id.PrefixNotification, "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), notificationID, identity.UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
