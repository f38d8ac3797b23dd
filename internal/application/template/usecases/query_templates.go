package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetTemplateUseCase struct {
	repo   template.Repository
	store  common.BlobStore
	logger logger.Interface
}

func NewGetTemplateUseCase(repo template.Repository, store common.BlobStore, logger logger.Interface) *GetTemplateUseCase {
	return &GetTemplateUseCase{repo: repo, store: store, logger: logger}
}

func (uc *GetTemplateUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateDTO, error) {
	tpl, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTemplateDTO(tpl), nil
}

// Download returns the original uploaded document.
func (uc *GetTemplateUseCase) Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateFile, error) {
	tpl, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.store.Get(ctx, tpl.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to read template file", "id", id, "error", err)
		return nil, errors.NewUpstreamError("failed to read template file")
	}
	return &dto.TemplateFile{FileName: tpl.FileName(), Data: data}, nil
}

type ListTemplatesUseCase struct {
	repo   template.Repository
	logger logger.Interface
}

func NewListTemplatesUseCase(repo template.Repository, logger logger.Interface) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{repo: repo, logger: logger}
}

func (uc *ListTemplatesUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListTemplatesRequest) (*dto.ListTemplatesResponse, error) {
	if identity == nil || !identity.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list templates")
	}
	companyID := identity.ScopeCompanyID()
	if identity.IsSuperAdmin() {
		companyID = req.CompanyID
	}

	items, total, err := uc.repo.List(ctx, template.ListFilter{
		CompanyID: companyID,
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list templates", "company_id", companyID, "error", err)
		return nil, errors.NewInternalError("failed to list templates")
	}

	return &dto.ListTemplatesResponse{
		Items:    dto.ToTemplateDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
