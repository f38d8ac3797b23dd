package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/supplier/dto"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// load fetches a supplier the caller may access.
func load(ctx context.Context, repo supplier.Repository, log logger.Interface, identity *authorization.Identity, id string) (*supplier.Supplier, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load supplier", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to load supplier")
	}
	if s == nil {
		return nil, errors.NewNotFoundError("supplier not found")
	}
	if !identity.CanAccessSupplier(s.ID(), s.CompanyID()) {
		return nil, errors.NewForbiddenError("access to this supplier is not allowed")
	}
	return s, nil
}

type GetSupplierUseCase struct {
	repo   supplier.Repository
	logger logger.Interface
}

func NewGetSupplierUseCase(repo supplier.Repository, logger logger.Interface) *GetSupplierUseCase {
	return &GetSupplierUseCase{repo: repo, logger: logger}
}

func (uc *GetSupplierUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.SupplierDTO, error) {
	s, err := load(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToSupplierDTO(s), nil
}

type ListSuppliersUseCase struct {
	repo   supplier.Repository
	logger logger.Interface
}

func NewListSuppliersUseCase(repo supplier.Repository, logger logger.Interface) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{repo: repo, logger: logger}
}

// Execute lists suppliers of the caller's company. Supplier users only see
// their own record.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListSuppliersRequest) (*dto.ListSuppliersResponse, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	filter := supplier.ListFilter{
		CompanyID: identity.ScopeCompanyID(),
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if identity.IsSuperAdmin() {
		filter.CompanyID = req.CompanyID
	}
	if identity.Role == authorization.RoleSupplier {
		filter.SupplierID = identity.SupplierID
	}
	if req.Status != "" {
		status := supplier.Status(req.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid supplier status", req.Status)
		}
		filter.Status = &status
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list suppliers", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list suppliers")
	}

	return &dto.ListSuppliersResponse{
		Items:    dto.ToSupplierDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
