package dto

import (
	"time"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/mapper"
)

type NotificationDTO struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	TargetID   string     `json:"target_id,omitempty"`
	TargetType string     `json:"target_type,omitempty"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ListNotificationsRequest struct {
	UserID     string
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResponse struct {
	Items    []*NotificationDTO `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:         n.ID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		TargetID:   n.TargetID(),
		TargetType: n.TargetType(),
		Read:       n.IsRead(),
		ReadAt:     n.ReadAt(),
		CreatedAt:  n.CreatedAt(),
	}
}

func ToNotificationDTOList(items []*notification.Notification) []*NotificationDTO {
	out := mapper.MapSlice(items, ToNotificationDTO)
	if out == nil {
		return []*NotificationDTO{}
	}
	return out
}
