package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id, userID string) (*dto.NotificationDTO, error) {
	n, err := loadOwned(ctx, uc.repo, uc.logger, id, userID)
	if err != nil {
		return nil, err
	}
	if n.IsRead() {
		return dto.ToNotificationDTO(n), nil
	}

	now := biztime.NowUTC()
	if err := uc.repo.MarkAsRead(ctx, id, now); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update notification")
	}
	n.MarkAsRead(now)

	return dto.ToNotificationDTO(n), nil
}
