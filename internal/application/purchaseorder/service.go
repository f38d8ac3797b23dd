package purchaseorder

import (
	"context"

	"github.com/prism-finance/prism/internal/application/purchaseorder/dto"
	"github.com/prism-finance/prism/internal/application/purchaseorder/usecases"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service manages the purchase orders a company issues to its suppliers.
type Service struct {
	create *usecases.CreatePurchaseOrderUseCase
	update *usecases.UpdatePurchaseOrderUseCase
	send   *usecases.SendPurchaseOrderUseCase
	cancel *usecases.CancelPurchaseOrderUseCase
	sign   *usecases.SignPurchaseOrderUseCase
	get    *usecases.GetPurchaseOrderUseCase
	list   *usecases.ListPurchaseOrdersUseCase
}

func NewService(
	repo purchaseorder.Repository,
	suppliers usecases.SupplierReader,
	notifier usecases.Notifier,
	logger logger.Interface,
) *Service {
	return &Service{
		create: usecases.NewCreatePurchaseOrderUseCase(repo, suppliers, logger),
		update: usecases.NewUpdatePurchaseOrderUseCase(repo, logger),
		send:   usecases.NewSendPurchaseOrderUseCase(repo, notifier, logger),
		cancel: usecases.NewCancelPurchaseOrderUseCase(repo, notifier, logger),
		sign:   usecases.NewSignPurchaseOrderUseCase(repo, suppliers, notifier, logger),
		get:    usecases.NewGetPurchaseOrderUseCase(repo, logger),
		list:   usecases.NewListPurchaseOrdersUseCase(repo, logger),
	}
}

func (s *Service) Create(ctx context.Context, identity *authorization.Identity, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error) {
	return s.create.Execute(ctx, identity, req)
}

func (s *Service) Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderDTO, error) {
	return s.update.Execute(ctx, identity, id, req)
}

func (s *Service) Send(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	return s.send.Execute(ctx, identity, id)
}

func (s *Service) Cancel(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	return s.cancel.Execute(ctx, identity, id)
}

func (s *Service) Sign(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	return s.sign.Execute(ctx, identity, id)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.PurchaseOrderDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListPurchaseOrdersRequest) (*dto.ListPurchaseOrdersResponse, error) {
	return s.list.Execute(ctx, identity, req)
}
