package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/constants"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type GetContractUseCase struct {
	contracts contract.Repository
	store     common.BlobStore
	logger    logger.Interface
}

func NewGetContractUseCase(contracts contract.Repository, store common.BlobStore, logger logger.Interface) *GetContractUseCase {
	return &GetContractUseCase{
		contracts: contracts,
		store:     store,
		logger:    logger,
	}
}

func (uc *GetContractUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error) {
	c, err := loadAccessible(ctx, uc.contracts, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	return dto.ToContractDTO(c), nil
}

// HTML returns the decoded contract body.
func (uc *GetContractUseCase) HTML(ctx context.Context, identity *authorization.Identity, id string) (string, error) {
	c, err := loadAccessible(ctx, uc.contracts, uc.logger, identity, id)
	if err != nil {
		return "", err
	}
	body, err := c.HTML()
	if err != nil {
		uc.logger.Errorw("stored contract content is corrupt", "id", id, "error", err)
		return "", errors.NewInternalError("failed to read contract content")
	}
	return body, nil
}

// File returns the stored rendered file.
func (uc *GetContractUseCase) File(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractFile, error) {
	c, err := loadAccessible(ctx, uc.contracts, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.store.Get(ctx, c.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to read contract file", "id", id, "file_path", c.FilePath(), "error", err)
		return nil, errors.NewUpstreamError("failed to read contract file")
	}
	return &dto.ContractFile{
		FileName:    c.ID() + ".html",
		ContentType: constants.ContentTypeHTML,
		Data:        data,
	}, nil
}
