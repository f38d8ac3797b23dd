package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// loadOwned fetches a notification and hides it unless userID owns it.
func loadOwned(ctx context.Context, repo notification.Repository, log logger.Interface, id, userID string) (*notification.Notification, error) {
	n, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load notification", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to load notification")
	}
	if n == nil || n.UserID() != userID {
		return nil, errors.NewNotFoundError("notification not found")
	}
	return n, nil
}
