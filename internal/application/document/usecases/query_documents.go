package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/document/dto"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetDocumentUseCase struct {
	repo      document.Repository
	suppliers SupplierReader
	store     common.BlobStore
	logger    logger.Interface
}

func NewGetDocumentUseCase(repo document.Repository, suppliers SupplierReader, store common.BlobStore, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{repo: repo, suppliers: suppliers, store: store, logger: logger}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentDTO, error) {
	if _, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID); err != nil {
		return nil, err
	}
	doc, err := loadDocument(ctx, uc.repo, uc.logger, supplierID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToDocumentDTO(doc), nil
}

func (uc *GetDocumentUseCase) Download(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentFile, error) {
	if _, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID); err != nil {
		return nil, err
	}
	doc, err := loadDocument(ctx, uc.repo, uc.logger, supplierID, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.store.Get(ctx, doc.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to read document file", "id", id, "error", err)
		return nil, errors.NewUpstreamError("failed to read document file")
	}
	return &dto.DocumentFile{FileName: doc.FileName(), Data: data}, nil
}

type ListDocumentsUseCase struct {
	repo      document.Repository
	suppliers SupplierReader
	logger    logger.Interface
}

func NewListDocumentsUseCase(repo document.Repository, suppliers SupplierReader, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{repo: repo, suppliers: suppliers, logger: logger}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error) {
	if _, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID); err != nil {
		return nil, err
	}

	filter := document.ListFilter{
		SupplierID: supplierID,
		Category:   req.Category,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.Status != "" {
		status := document.Status(req.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid document status", req.Status)
		}
		filter.Status = &status
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "supplier_id", supplierID, "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}

	return &dto.ListDocumentsResponse{
		Items:    dto.ToDocumentDTOList(items),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

type DeleteDocumentUseCase struct {
	repo      document.Repository
	suppliers SupplierReader
	store     common.BlobStore
	logger    logger.Interface
}

func NewDeleteDocumentUseCase(repo document.Repository, suppliers SupplierReader, store common.BlobStore, logger logger.Interface) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{repo: repo, suppliers: suppliers, store: store, logger: logger}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, identity *authorization.Identity, supplierID, id string) error {
	s, err := loadSupplier(ctx, uc.suppliers, uc.logger, identity, supplierID)
	if err != nil {
		return err
	}
	if !identity.IsAdminFor(s.CompanyID()) {
		return errors.NewForbiddenError("only company admins can delete documents")
	}
	doc, err := loadDocument(ctx, uc.repo, uc.logger, supplierID, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, doc.ID()); err != nil {
		uc.logger.Errorw("failed to delete document", "id", id, "error", err)
		return errors.NewInternalError("failed to delete document")
	}
	if err := uc.store.Delete(ctx, doc.FilePath()); err != nil {
		uc.logger.Warnw("failed to remove document file", "key", doc.FilePath(), "error", err)
	}

	uc.logger.Infow("document deleted", "id", id, "supplier_id", supplierID)
	return nil
}
