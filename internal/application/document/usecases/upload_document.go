package usecases

import (
	"context"
	"fmt"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/document/dto"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type UploadDocumentUseCase struct {
	repo      document.Repository
	suppliers SupplierReader
	store     common.BlobStore
	notifier  Notifier
	logger    logger.Interface
}

func NewUploadDocumentUseCase(
	repo document.Repository,
	suppliers SupplierReader,
	store common.BlobStore,
	notifier Notifier,
	logger logger.Interface,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		repo:      repo,
		suppliers: suppliers,
		store:     store,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *UploadDocumentUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error) {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID)
	if err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, errors.NewValidationError("document file is empty")
	}

	key := documentFileKey(s.ID(), req.FileName)
	if err := uc.store.Put(ctx, key, req.Data, ""); err != nil {
		uc.logger.Errorw("failed to store document file", "key", key, "error", err)
		return nil, errors.NewUpstreamError("failed to store document file")
	}

	doc, err := document.NewDocument(document.NewDocumentParams{
		CompanyID:  s.CompanyID(),
		SupplierID: s.ID(),
		Name:       req.Name,
		Category:   req.Category,
		FileName:   req.FileName,
		FilePath:   key,
		UploadedBy: identity.UserID,
		Now:        biztime.NowUTC(),
	})
	if err != nil {
		uc.discardFile(ctx, key)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to persist document", "supplier_id", s.ID(), "error", err)
		uc.discardFile(ctx, key)
		return nil, errors.NewInternalError("failed to upload document")
	}

	uc.logger.Infow("document uploaded", "id", doc.ID(), "supplier_id", s.ID(), "category", doc.Category())

	if identity.Role == authorization.RoleSupplier {
		uc.notifier.Dispatch(ctx, appnotification.Event{
			Type:       notification.TypeDocumentUploaded,
			Title:      "New supplier document",
			Message:    fmt.Sprintf("%s uploaded %q for review.", s.Name(), doc.Name()),
			TargetID:   doc.ID(),
			TargetType: targetTypeDocument,
			CompanyID:  s.CompanyID(),
			Audience:   appnotification.CompanyAdmins(s.CompanyID()),
		})
	}

	return dto.ToDocumentDTO(doc), nil
}

func (uc *UploadDocumentUseCase) discardFile(ctx context.Context, key string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to remove orphaned document file", "key", key, "error", err)
	}
}
