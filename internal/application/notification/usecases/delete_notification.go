package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type DeleteNotificationUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewDeleteNotificationUseCase(repo notification.Repository, logger logger.Interface) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, id, userID string) error {
	if _, err := loadOwned(ctx, uc.repo, uc.logger, id, userID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete notification", "id", id, "error", err)
		return errors.NewInternalError("failed to delete notification")
	}
	return nil
}
