package company

import (
	"context"

	"github.com/prism-finance/prism/internal/application/company/dto"
	"github.com/prism-finance/prism/internal/application/company/usecases"
	"github.com/prism-finance/prism/internal/domain/company"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type Service struct {
	create *usecases.CreateCompanyUseCase
	get    *usecases.GetCompanyUseCase
	list   *usecases.ListCompaniesUseCase
}

func NewService(repo company.Repository, logger logger.Interface) *Service {
	return &Service{
		create: usecases.NewCreateCompanyUseCase(repo, logger),
		get:    usecases.NewGetCompanyUseCase(repo, logger),
		list:   usecases.NewListCompaniesUseCase(repo, logger),
	}
}

func (s *Service) Create(ctx context.Context, identity *authorization.Identity, req dto.CreateCompanyRequest) (*dto.CompanyDTO, error) {
	return s.create.Execute(ctx, identity, req)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.CompanyDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, page, pageSize int) (*dto.ListCompaniesResponse, error) {
	return s.list.Execute(ctx, identity, page, pageSize)
}
