package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/purchaseorder/dto"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetPurchaseOrderUseCase struct {
	repo   purchaseorder.Repository
	logger logger.Interface
}

func NewGetPurchaseOrderUseCase(repo purchaseorder.Repository, logger logger.Interface) *GetPurchaseOrderUseCase {
	return &GetPurchaseOrderUseCase{repo: repo, logger: logger}
}

func (uc *GetPurchaseOrderUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	po, err := loadOrder(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToPurchaseOrderDTO(po), nil
}

type ListPurchaseOrdersUseCase struct {
	repo   purchaseorder.Repository
	logger logger.Interface
}

func NewListPurchaseOrdersUseCase(repo purchaseorder.Repository, logger logger.Interface) *ListPurchaseOrdersUseCase {
	return &ListPurchaseOrdersUseCase{repo: repo, logger: logger}
}

// Execute lists the orders visible to the caller. Supplier users only see
// their own supplier's sent orders whatever filter they pass.
func (uc *ListPurchaseOrdersUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListPurchaseOrdersRequest) (*dto.ListPurchaseOrdersResponse, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	filter := purchaseorder.ListFilter{
		CompanyID:  identity.ScopeCompanyID(),
		SupplierID: req.SupplierID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if identity.Role == authorization.RoleSupplier {
		filter.SupplierID = identity.SupplierID
		filter.HideDrafts = true
	}
	if req.Status != "" {
		status := purchaseorder.Status(req.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid purchase order status", req.Status)
		}
		filter.Status = &status
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list purchase orders", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list purchase orders")
	}

	return &dto.ListPurchaseOrdersResponse{
		Items:    dto.ToPurchaseOrderDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
