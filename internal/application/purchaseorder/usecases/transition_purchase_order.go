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

type SendPurchaseOrderUseCase struct {
	repo     purchaseorder.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewSendPurchaseOrderUseCase(repo purchaseorder.Repository, notifier Notifier, logger logger.Interface) *SendPurchaseOrderUseCase {
	return &SendPurchaseOrderUseCase{repo: repo, notifier: notifier, logger: logger}
}

func (uc *SendPurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	po, err := loadOrder(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(po.CompanyID()) {
		return nil, apperrors.NewForbiddenError("only company admins can send purchase orders")
	}

	from := po.Status()
	if err := po.Send(biztime.NowUTC()); err != nil {
		return nil, apperrors.NewConflictError("purchase order cannot be sent in its current status", err.Error())
	}
	if err := applyTransition(ctx, uc.repo, uc.logger, po, from); err != nil {
		return nil, err
	}

	uc.logger.Infow("purchase order sent", "id", po.ID(), "supplier_id", po.SupplierID())
	uc.notifier.Dispatch(ctx, sentEvent(po))
	return dto.ToPurchaseOrderDTO(po), nil
}

type CancelPurchaseOrderUseCase struct {
	repo     purchaseorder.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewCancelPurchaseOrderUseCase(repo purchaseorder.Repository, notifier Notifier, logger logger.Interface) *CancelPurchaseOrderUseCase {
	return &CancelPurchaseOrderUseCase{repo: repo, notifier: notifier, logger: logger}
}

// Execute cancels a draft or sent order. The supplier only hears about
// orders it had received.
func (uc *CancelPurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	po, err := loadOrder(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(po.CompanyID()) {
		return nil, apperrors.NewForbiddenError("only company admins can cancel purchase orders")
	}

	from := po.Status()
	if err := po.Cancel(biztime.NowUTC()); err != nil {
		return nil, apperrors.NewConflictError("purchase order cannot be cancelled in its current status", err.Error())
	}
	if err := applyTransition(ctx, uc.repo, uc.logger, po, from); err != nil {
		return nil, err
	}

	uc.logger.Infow("purchase order cancelled", "id", po.ID(), "from", from)
	if from == purchaseorder.StatusSent {
		uc.notifier.Dispatch(ctx, cancelledEvent(po))
	}
	return dto.ToPurchaseOrderDTO(po), nil
}

type SignPurchaseOrderUseCase struct {
	repo      purchaseorder.Repository
	suppliers SupplierReader
	notifier  Notifier
	logger    logger.Interface
}

func NewSignPurchaseOrderUseCase(repo purchaseorder.Repository, suppliers SupplierReader, notifier Notifier, logger logger.Interface) *SignPurchaseOrderUseCase {
	return &SignPurchaseOrderUseCase{repo: repo, suppliers: suppliers, notifier: notifier, logger: logger}
}

// Execute records the supplier's signature. Only users of the order's
// supplier may sign.
func (uc *SignPurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	po, err := loadOrder(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if identity.Role != authorization.RoleSupplier || identity.SupplierID != po.SupplierID() {
		return nil, apperrors.NewForbiddenError("only the supplier can sign a purchase order")
	}

	from := po.Status()
	err = po.Sign(identity.UserID, biztime.NowUTC())
	if errors.Is(err, purchaseorder.ErrSignatureNotRequired) {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err != nil {
		return nil, apperrors.NewConflictError("purchase order cannot be signed in its current status", err.Error())
	}
	if err := applyTransition(ctx, uc.repo, uc.logger, po, from); err != nil {
		return nil, err
	}

	supplierName := po.SupplierID()
	if s, err := uc.suppliers.GetByID(ctx, po.SupplierID()); err == nil && s != nil {
		supplierName = s.Name()
	}

	uc.logger.Infow("purchase order signed", "id", po.ID(), "user_id", identity.UserID)
	uc.notifier.Dispatch(ctx, signedEvent(po, supplierName))
	return dto.ToPurchaseOrderDTO(po), nil
}
