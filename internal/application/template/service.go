package template

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/application/template/usecases"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Service manages contract templates of a company.
type Service struct {
	upload *usecases.UploadTemplateUseCase
	update *usecases.UpdateTemplateUseCase
	delete *usecases.DeleteTemplateUseCase
	get    *usecases.GetTemplateUseCase
	list   *usecases.ListTemplatesUseCase
}

func NewService(
	repo template.Repository,
	contracts usecases.ContractCounter,
	txMgr usecases.TransactionManager,
	store common.BlobStore,
	converter common.DocumentConverter,
	logger logger.Interface,
) *Service {
	return &Service{
		upload: usecases.NewUploadTemplateUseCase(repo, store, converter, logger),
		update: usecases.NewUpdateTemplateUseCase(repo, store, converter, logger),
		delete: usecases.NewDeleteTemplateUseCase(repo, contracts, txMgr, logger),
		get:    usecases.NewGetTemplateUseCase(repo, store, logger),
		list:   usecases.NewListTemplatesUseCase(repo, logger),
	}
}

func (s *Service) Upload(ctx context.Context, identity *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error) {
	return s.upload.Execute(ctx, identity, req)
}

func (s *Service) Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error) {
	return s.update.Execute(ctx, identity, id, req)
}

func (s *Service) Delete(ctx context.Context, identity *authorization.Identity, id string) error {
	return s.delete.Execute(ctx, identity, id)
}

func (s *Service) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateDTO, error) {
	return s.get.Execute(ctx, identity, id)
}

func (s *Service) Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateFile, error) {
	return s.get.Download(ctx, identity, id)
}

func (s *Service) List(ctx context.Context, identity *authorization.Identity, req dto.ListTemplatesRequest) (*dto.ListTemplatesResponse, error) {
	return s.list.Execute(ctx, identity, req)
}
