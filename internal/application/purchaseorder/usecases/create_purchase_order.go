package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/purchaseorder/dto"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type CreatePurchaseOrderUseCase struct {
	repo      purchaseorder.Repository
	suppliers SupplierReader
	logger    logger.Interface
}

func NewCreatePurchaseOrderUseCase(repo purchaseorder.Repository, suppliers SupplierReader, logger logger.Interface) *CreatePurchaseOrderUseCase {
	return &CreatePurchaseOrderUseCase{repo: repo, suppliers: suppliers, logger: logger}
}

// Execute creates a draft order. The supplier is told once it is sent.
func (uc *CreatePurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error) {
	s, err := uc.suppliers.GetByID(ctx, req.SupplierID)
	if err != nil {
		uc.logger.Errorw("failed to load supplier", "supplier_id", req.SupplierID, "error", err)
		return nil, errors.NewInternalError("failed to load supplier")
	}
	if s == nil {
		return nil, errors.NewNotFoundError("supplier not found")
	}
	if !identity.IsAdminFor(s.CompanyID()) {
		return nil, errors.NewForbiddenError("only company admins can create purchase orders")
	}

	po, err := purchaseorder.NewPurchaseOrder(purchaseorder.NewPurchaseOrderParams{
		CompanyID:        s.CompanyID(),
		SupplierID:       s.ID(),
		Number:           req.Number,
		Items:            dto.ToItems(req.Items),
		Currency:         req.Currency,
		Notes:            req.Notes,
		RequireSignature: req.RequireSignature,
		DueDate:          req.DueDate,
		CreatedBy:        identity.UserID,
		Now:              biztime.NowUTC(),
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsByNumber(ctx, po.CompanyID(), po.Number())
	if err != nil {
		uc.logger.Errorw("failed to check purchase order number", "number", po.Number(), "error", err)
		return nil, errors.NewInternalError("failed to create purchase order")
	}
	if exists {
		return nil, errors.NewConflictError("purchase order number already in use", po.Number())
	}

	if err := uc.repo.Create(ctx, po); err != nil {
		uc.logger.Errorw("failed to persist purchase order", "supplier_id", s.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create purchase order")
	}

	uc.logger.Infow("purchase order created", "id", po.ID(), "number", po.Number(), "supplier_id", s.ID(), "total", po.Total().String())
	return dto.ToPurchaseOrderDTO(po), nil
}
