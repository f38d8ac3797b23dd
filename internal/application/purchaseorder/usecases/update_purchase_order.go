package usecases

import (
	"context"
	"errors"

	"github.com/prism-finance/prism/internal/application/purchaseorder/dto"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type UpdatePurchaseOrderUseCase struct {
	repo   purchaseorder.Repository
	logger logger.Interface
}

func NewUpdatePurchaseOrderUseCase(repo purchaseorder.Repository, logger logger.Interface) *UpdatePurchaseOrderUseCase {
	return &UpdatePurchaseOrderUseCase{repo: repo, logger: logger}
}

func (uc *UpdatePurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error) {
	po, err := loadOrder(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(po.CompanyID()) {
		return nil, apperrors.NewForbiddenError("only company admins can edit purchase orders")
	}

	previousNumber := po.Number()
	err = po.Update(purchaseorder.UpdateParams{
		Number:           req.Number,
		Items:            dto.ToItems(req.Items),
		Currency:         req.Currency,
		Notes:            req.Notes,
		RequireSignature: req.RequireSignature,
		DueDate:          req.DueDate,
	}, biztime.NowUTC())
	if errors.Is(err, purchaseorder.ErrNotEditable) {
		return nil, apperrors.NewConflictError(err.Error(), po.Status().String())
	}
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if po.Number() != previousNumber {
		exists, err := uc.repo.ExistsByNumber(ctx, po.CompanyID(), po.Number())
		if err != nil {
			uc.logger.Errorw("failed to check purchase order number", "number", po.Number(), "error", err)
			return nil, apperrors.NewInternalError("failed to update purchase order")
		}
		if exists {
			return nil, apperrors.NewConflictError("purchase order number already in use", po.Number())
		}
	}

	if err := uc.repo.Update(ctx, po); err != nil {
		if errors.Is(err, purchaseorder.ErrConcurrentModification) {
			return nil, apperrors.NewConflictError("purchase order was sent or cancelled by another request")
		}
		uc.logger.Errorw("failed to update purchase order", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update purchase order")
	}

	uc.logger.Infow("purchase order updated", "id", id)
	return dto.ToPurchaseOrderDTO(po), nil
}
