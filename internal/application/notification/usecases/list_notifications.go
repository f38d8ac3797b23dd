package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/notification/dto"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	items, total, err := uc.repo.ListByUser(ctx, notification.ListFilter{
		UserID:     req.UserID,
		UnreadOnly: req.UnreadOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", req.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return &dto.ListNotificationsResponse{
		Items:    dto.ToNotificationDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
