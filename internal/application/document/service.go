package document

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/document/dto"
	"github.com/prism-finance/prism/internal/application/document/usecases"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service manages the compliance documents of a supplier.
type Service struct {
	upload *usecases.UploadDocumentUseCase
	review *usecases.ReviewDocumentUseCase
	get    *usecases.GetDocumentUseCase
	list   *usecases.ListDocumentsUseCase
	delete *usecases.DeleteDocumentUseCase
}

func NewService(
	repo document.Repository,
	suppliers usecases.SupplierReader,
	store common.BlobStore,
	notifier usecases.Notifier,
	logger logger.Interface,
) *Service {
	return &Service{
		upload: usecases.NewUploadDocumentUseCase(repo, suppliers, store, notifier, logger),
		review: usecases.NewReviewDocumentUseCase(repo, suppliers, notifier, logger),
		get:    usecases.NewGetDocumentUseCase(repo, suppliers, store, logger),
		list:   usecases.NewListDocumentsUseCase(repo, suppliers, logger),
		delete: usecases.NewDeleteDocumentUseCase(repo, suppliers, store, logger),
	}
}

func (s *Service) Upload(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error) {
	return s.upload.Execute(ctx, identity, supplierID, req)
}

func (s *Service) Review(ctx context.Context, identity *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error) {
	return s.review.Execute(ctx, identity, supplierID, id, req)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentDTO, error) {
	return s.get.Execute(ctx, identity, supplierID, id)
}

func (s *Service) Download(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentFile, error) {
	return s.get.Download(ctx, identity, supplierID, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error) {
	return s.list.Execute(ctx, identity, supplierID, req)
}

func (s *Service) Delete(ctx context.Context, identity *authorization.Identity, supplierID, id string) error {
	return s.delete.Execute(ctx, identity, supplierID, id)
}
