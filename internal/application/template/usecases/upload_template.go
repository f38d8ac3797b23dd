package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type UploadTemplateUseCase struct {
	repo      template.Repository
	store     common.BlobStore
	converter common.DocumentConverter
	logger    logger.Interface
}

func NewUploadTemplateUseCase(repo template.Repository, store common.BlobStore, converter common.DocumentConverter, logger logger.Interface) *UploadTemplateUseCase {
	return &UploadTemplateUseCase{
		repo:      repo,
		store:     store,
		converter: converter,
		logger:    logger,
	}
}

// Execute stores the document and records its placeholders. Admins upload
// into their own company; super admins must name one.
func (uc *UploadTemplateUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error) {
	companyID := req.CompanyID
	if identity != nil && !identity.IsSuperAdmin() {
		companyID = identity.CompanyID
	}
	if companyID == "" {
		return nil, errors.NewValidationError("company_id is required")
	}
	if !identity.IsAdminFor(companyID) {
		return nil, errors.NewForbiddenError("only company admins can upload templates")
	}

	uc.logger.Infow("executing upload template use case", "company_id", companyID, "file_name", req.File.FileName)

	variables := extractFromDocument(ctx, uc.converter, uc.logger, req.File)
	key, err := storeFile(ctx, uc.store, uc.logger, companyID, req.File)
	if err != nil {
		return nil, err
	}

	tpl, err := template.NewTemplate(template.NewTemplateParams{
		CompanyID:          companyID,
		Name:               req.Name,
		Description:        req.Description,
		FileName:           req.File.FileName,
		FilePath:           key,
		Variables:          variables,
		ValidityPeriodDays: req.ValidityPeriodDays,
		CreatedBy:          identity.UserID,
		Now:                biztime.NowUTC(),
	})
	if err != nil {
		discardFile(ctx, uc.store, uc.logger, key)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to persist template", "company_id", companyID, "error", err)
		discardFile(ctx, uc.store, uc.logger, key)
		return nil, errors.NewInternalError("failed to create template")
	}

	uc.logger.Infow("template uploaded", "id", tpl.ID(), "variables", len(tpl.Variables()))
	return dto.ToTemplateDTO(tpl), nil
}
