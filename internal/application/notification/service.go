package notification

import (
	"context"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/application/notification/usecases"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service exposes the notification inbox of the calling user.
type Service struct {
	listNotifications      *usecases.ListNotificationsUseCase
	markNotificationAsRead *usecases.MarkNotificationAsReadUseCase
	markAllAsRead          *usecases.MarkAllAsReadUseCase
	deleteNotification     *usecases.DeleteNotificationUseCase
	getUnreadCount         *usecases.GetUnreadCountUseCase
}

func NewService(repo notification.Repository, logger logger.Interface) *Service {
	return &Service{
		listNotifications:      usecases.NewListNotificationsUseCase(repo, logger),
		markNotificationAsRead: usecases.NewMarkNotificationAsReadUseCase(repo, logger),
		markAllAsRead:          usecases.NewMarkAllAsReadUseCase(repo, logger),
		deleteNotification:     usecases.NewDeleteNotificationUseCase(repo, logger),
		getUnreadCount:         usecases.NewGetUnreadCountUseCase(repo, logger),
	}
}

func (s *Service) List(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	return s.listNotifications.Execute(ctx, req)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID string) (*dto.NotificationDTO, error) {
	return s.markNotificationAsRead.Execute(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.markAllAsRead.Execute(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return s.deleteNotification.Execute(ctx, id, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	return s.getUnreadCount.Execute(ctx, userID)
}
