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

type UpdateTemplateUseCase struct {
	repo      template.Repository
	store     common.BlobStore
	converter common.DocumentConverter
	logger    logger.Interface
}

func NewUpdateTemplateUseCase(repo template.Repository, store common.BlobStore, converter common.DocumentConverter, logger logger.Interface) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		repo:      repo,
		store:     store,
		converter: converter,
		logger:    logger,
	}
}

// Execute updates metadata and, when a file is given, replaces the document
// and re-extracts its variables.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error) {
	tpl, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	if err := tpl.UpdateMetadata(req.Name, req.Description, req.ValidityPeriodDays, req.ClearValidity, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The superseded file stays in storage: a generation that loaded the
	// template before this update still reads it.
	var newKey, previousPath string
	if req.File != nil {
		variables := extractFromDocument(ctx, uc.converter, uc.logger, *req.File)
		key, err := storeFile(ctx, uc.store, uc.logger, tpl.CompanyID(), *req.File)
		if err != nil {
			return nil, err
		}
		newKey, previousPath = key, tpl.FilePath()
		if err := tpl.ReplaceFile(req.File.FileName, key, variables, now); err != nil {
			discardFile(ctx, uc.store, uc.logger, key)
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.repo.Update(ctx, tpl); err != nil {
		uc.logger.Errorw("failed to update template", "id", id, "error", err)
		if newKey != "" {
			discardFile(ctx, uc.store, uc.logger, newKey)
		}
		return nil, errors.NewInternalError("failed to update template")
	}

	uc.logger.Infow("template updated", "id", id, "file_replaced", req.File != nil, "superseded_file", previousPath)
	return dto.ToTemplateDTO(tpl), nil
}
