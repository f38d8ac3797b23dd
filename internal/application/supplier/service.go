package supplier

import (
	"context"

	"github.com/prism-finance/prism/internal/application/supplier/dto"
	"github.com/prism-finance/prism/internal/application/supplier/usecases"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type Service struct {
	create *usecases.CreateSupplierUseCase
	update *usecases.UpdateSupplierUseCase
	get    *usecases.GetSupplierUseCase
	list   *usecases.ListSuppliersUseCase
}

func NewService(repo supplier.Repository, notifier usecases.Notifier, logger logger.Interface) *Service {
	return &Service{
		create: usecases.NewCreateSupplierUseCase(repo, logger),
		update: usecases.NewUpdateSupplierUseCase(repo, notifier, logger),
		get:    usecases.NewGetSupplierUseCase(repo, logger),
		list:   usecases.NewListSuppliersUseCase(repo, logger),
	}
}

func (s *Service) Create(ctx context.Context, identity *authorization.Identity, req dto.CreateSupplierRequest) (*dto.SupplierDTO, error) {
	return s.create.Execute(ctx, identity, req)
}

func (s *Service) Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateSupplierRequest) (*dto.SupplierDTO, error) {
	return s.update.Execute(ctx, identity, id, req)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.SupplierDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListSuppliersRequest) (*dto.ListSuppliersResponse, error) {
	return s.list.Execute(ctx, identity, req)
}
