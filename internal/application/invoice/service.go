package invoice

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/invoice/dto"
	"github.com/prism-finance/prism/internal/application/invoice/usecases"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service manages supplier invoices and their review.
type Service struct {
	upload       *usecases.UploadInvoiceUseCase
	updateStatus *usecases.UpdateInvoiceStatusUseCase
	get          *usecases.GetInvoiceUseCase
	list         *usecases.ListInvoicesUseCase
	delete       *usecases.DeleteInvoiceUseCase
}

func NewService(
	repo invoice.Repository,
	suppliers usecases.SupplierReader,
	orders usecases.PurchaseOrderReader,
	conditions usecases.ConditionsChecker,
	store common.BlobStore,
	notifier usecases.Notifier,
	logger logger.Interface,
) *Service {
	return &Service{
		upload:       usecases.NewUploadInvoiceUseCase(repo, suppliers, orders, conditions, store, notifier, logger),
		updateStatus: usecases.NewUpdateInvoiceStatusUseCase(repo, notifier, logger),
		get:          usecases.NewGetInvoiceUseCase(repo, store, logger),
		list:         usecases.NewListInvoicesUseCase(repo, logger),
		delete:       usecases.NewDeleteInvoiceUseCase(repo, store, logger),
	}
}

func (s *Service) Upload(ctx context.Context, identity *authorization.Identity, req dto.UploadInvoiceRequest) (*dto.InvoiceDTO, error) {
	return s.upload.Execute(ctx, identity, req)
}

func (s *Service) UpdateStatus(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateInvoiceStatusRequest) (*dto.InvoiceDTO, error) {
	return s.updateStatus.Execute(ctx, identity, id, req)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.InvoiceFile, error) {
	return s.get.Download(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error) {
	return s.list.Execute(ctx, identity, req)
}

func (s *Service) Delete(ctx context.Context, identity *authorization.Identity, id string) error {
	return s.delete.Execute(ctx, identity, id)
}
