package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type ListContractsUseCase struct {
	contracts contract.Repository
	logger    logger.Interface
}

func NewListContractsUseCase(contracts contract.Repository, logger logger.Interface) *ListContractsUseCase {
	return &ListContractsUseCase{
		contracts: contracts,
		logger:    logger,
	}
}

// Execute lists contracts visible to the caller. Supplier users only see
// their supplier's contracts whatever filter they pass.
func (uc *ListContractsUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListContractsRequest) (*dto.ListContractsResponse, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	filter := contract.ListFilter{
		CompanyID:  identity.ScopeCompanyID(),
		SupplierID: req.SupplierID,
		TemplateID: req.TemplateID,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if identity.Role == authorization.RoleSupplier {
		filter.SupplierID = identity.SupplierID
	}
	if req.Status != "" {
		status, err := vo.NewContractStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	items, total, err := uc.contracts.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list contracts")
	}

	return &dto.ListContractsResponse{
		Items:    dto.ToContractDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
