package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns how many notifications changed.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID string) (int64, error) {
	updated, err := uc.repo.MarkAllAsRead(ctx, userID, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return 0, errors.NewInternalError("failed to update notifications")
	}

	uc.logger.Infow("notifications marked as read", "user_id", userID, "count", updated)
	return updated, nil
}
