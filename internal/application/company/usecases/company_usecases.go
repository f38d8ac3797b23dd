package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/company/dto"
	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type CreateCompanyUseCase struct {
	repo   company.Repository
	logger logger.Interface
}

func NewCreateCompanyUseCase(repo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{repo: repo, logger: logger}
}

// Execute creates a tenant. Identity may be nil when called from the seed
// command.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.CreateCompanyRequest) (*dto.CompanyDTO, error) {
	if identity != nil && !identity.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only super admins can create companies")
	}

	c, err := company.NewCompany(req.Name, req.SIRET, req.Address, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.repo.ExistsBySIRET(ctx, c.SIRET())
	if err != nil {
		uc.logger.Errorw("failed to check company SIRET", "error", err)
		return nil, errors.NewInternalError("failed to create company")
	}
	if exists {
		return nil, errors.NewConflictError("a company with this SIRET already exists")
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a company with this SIRET already exists")
		}
		uc.logger.Errorw("failed to persist company", "error", err)
		return nil, errors.NewInternalError("failed to create company")
	}

	uc.logger.Infow("company created", "id", c.ID(), "name", c.Name())
	return dto.ToCompanyDTO(c), nil
}

type GetCompanyUseCase struct {
	repo   company.Repository
	logger logger.Interface
}

func NewGetCompanyUseCase(repo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{repo: repo, logger: logger}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.CompanyDTO, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get company", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to get company")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("company not found")
	}
	if !identity.CanAccessCompany(c.ID()) {
		return nil, errors.NewForbiddenError("access to this company is not allowed")
	}
	return dto.ToCompanyDTO(c), nil
}

type ListCompaniesUseCase struct {
	repo   company.Repository
	logger logger.Interface
}

func NewListCompaniesUseCase(repo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{repo: repo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, identity *authorization.Identity, page, pageSize int) (*dto.ListCompaniesResponse, error) {
	if !identity.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only super admins can list companies")
	}

	p := utils.ValidatePagination(page, pageSize)
	items, total, err := uc.repo.List(ctx, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, errors.NewInternalError("failed to list companies")
	}

	return &dto.ListCompaniesResponse{
		Items:    dto.ToCompanyDTOList(items),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
