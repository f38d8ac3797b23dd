package contract

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/application/contract/rendering"
	"github.com/prism-finance/prism/internal/application/contract/usecases"
	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// ServiceDeps groups the collaborators of the contract service.
type ServiceDeps struct {
	Contracts       contract.Repository
	Templates       usecases.TemplateReader
	Suppliers       usecases.SupplierReader
	Store           common.BlobStore
	Converter       common.DocumentConverter
	Notifier        usecases.Notifier
	ExpiryBatchSize int
}

// Service drives contract generation and the signature lifecycle.
type Service struct {
	generate *usecases.GenerateContractUseCase
	sign     *usecases.SignContractUseCase
	get      *usecases.GetContractUseCase
	list     *usecases.ListContractsUseCase
	cancel   *usecases.CancelContractUseCase
	expire   *usecases.ExpireContractsUseCase
}

func NewService(deps ServiceDeps, logger logger.Interface) *Service {
	renderer := rendering.NewRenderer(deps.Store, deps.Converter, logger)

	return &Service{
		generate: usecases.NewGenerateContractUseCase(
			deps.Contracts, deps.Templates, deps.Suppliers, renderer, deps.Store, deps.Notifier, logger,
		),
		sign:   usecases.NewSignContractUseCase(deps.Contracts, deps.Notifier, logger),
		get:    usecases.NewGetContractUseCase(deps.Contracts, deps.Store, logger),
		list:   usecases.NewListContractsUseCase(deps.Contracts, logger),
		cancel: usecases.NewCancelContractUseCase(deps.Contracts, deps.Notifier, logger),
		expire: usecases.NewExpireContractsUseCase(deps.Contracts, deps.Notifier, deps.ExpiryBatchSize, logger),
	}
}

func (s *Service) Generate(ctx context.Context, identity *authorization.Identity, req dto.GenerateContractRequest) (*dto.ContractDTO, error) {
	return s.generate.Execute(ctx, identity, req)
}

func (s *Service) SignAsSupplier(ctx context.Context, identity *authorization.Identity, id string, req dto.SignContractRequest) (*dto.ContractDTO, error) {
	return s.sign.Execute(ctx, identity, id, vo.PartySupplier, req)
}

func (s *Service) SignAsAdmin(ctx context.Context, identity *authorization.Identity, id string, req dto.SignContractRequest) (*dto.ContractDTO, error) {
	return s.sign.Execute(ctx, identity, id, vo.PartyAdmin, req)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error) {
	return s.get.HTML(ctx, identity, id)
}

func (s *Service) File(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractFile, error) {
	return s.get.File(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListContractsRequest) (*dto.ListContractsResponse, error) {
	return s.list.Execute(ctx, identity, req)
}

func (s *Service) Cancel(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error) {
	return s.cancel.Execute(ctx, identity, id)
}

// ExpireDue runs one expiry sweep and returns how many contracts expired.
func (s *Service) ExpireDue(ctx context.Context) (int, error) {
	return s.expire.Execute(ctx)
}
