package generalconditions

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	"github.com/prism-finance/prism/internal/application/generalconditions/usecases"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service manages the general conditions a company asks its suppliers to
// accept, and the acceptances themselves.
type Service struct {
	create *usecases.CreateConditionsUseCase
	update *usecases.UpdateConditionsUseCase
	delete *usecases.DeleteConditionsUseCase
	get    *usecases.GetConditionsUseCase
	list   *usecases.ListConditionsUseCase
	status *usecases.AcceptanceStatusUseCase
	accept *usecases.AcceptConditionsUseCase
}

func NewService(
	repo generalconditions.Repository,
	acceptances generalconditions.AcceptanceRepository,
	suppliers usecases.SupplierReader,
	converter common.DocumentConverter,
	txMgr usecases.TransactionManager,
	notifier usecases.Notifier,
	logger logger.Interface,
) *Service {
	return &Service{
		create: usecases.NewCreateConditionsUseCase(repo, txMgr, notifier, logger),
		update: usecases.NewUpdateConditionsUseCase(repo, txMgr, notifier, logger),
		delete: usecases.NewDeleteConditionsUseCase(repo, acceptances, txMgr, logger),
		get:    usecases.NewGetConditionsUseCase(repo, converter, logger),
		list:   usecases.NewListConditionsUseCase(repo, acceptances, logger),
		status: usecases.NewAcceptanceStatusUseCase(repo, acceptances, suppliers, logger),
		accept: usecases.NewAcceptConditionsUseCase(repo, acceptances, suppliers, notifier, logger),
	}
}

func (s *Service) Create(ctx context.Context, identity *authorization.Identity, req dto.CreateConditionsRequest) (*dto.ConditionsDTO, error) {
	return s.create.Execute(ctx, identity, req)
}

func (s *Service) Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateConditionsRequest) (*dto.ConditionsDTO, error) {
	return s.update.Execute(ctx, identity, id, req)
}

func (s *Service) Delete(ctx context.Context, identity *authorization.Identity, id string) error {
	return s.delete.Execute(ctx, identity, id)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.ConditionsDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) Active(ctx context.Context, identity *authorization.Identity, companyID string) (*dto.ConditionsDTO, error) {
	return s.get.Active(ctx, identity, companyID)
}

func (s *Service) HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error) {
	return s.get.HTML(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error) {
	return s.list.Execute(ctx, identity, req)
}

func (s *Service) Acceptances(ctx context.Context, identity *authorization.Identity, id string) ([]*dto.AcceptanceDTO, error) {
	return s.list.Acceptances(ctx, identity, id)
}

func (s *Service) AcceptanceStatus(ctx context.Context, identity *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error) {
	return s.status.Execute(ctx, identity, supplierID)
}

func (s *Service) Accept(ctx context.Context, identity *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error) {
	return s.accept.Execute(ctx, identity, supplierID, ipAddress, req)
}

// AcceptedActive lets the invoice module gate uploads on acceptance.
func (s *Service) AcceptedActive(ctx context.Context, companyID, supplierID string) (bool, error) {
	return s.status.AcceptedActive(ctx, companyID, supplierID)
}
