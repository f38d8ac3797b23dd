package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type DeleteTemplateUseCase struct {
	repo      template.Repository
	contracts ContractCounter
	txMgr     TransactionManager
	logger    logger.Interface
}

func NewDeleteTemplateUseCase(repo template.Repository, contracts ContractCounter, txMgr TransactionManager, logger logger.Interface) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		repo:      repo,
		contracts: contracts,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute soft deletes a template no contract references. The reference
// count and the delete share one transaction.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) error {
	tpl, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.contracts.CountByTemplateID(txCtx, tpl.ID())
		if err != nil {
			uc.logger.Errorw("failed to count template contracts", "id", id, "error", err)
			return errors.NewInternalError("failed to delete template")
		}
		if count > 0 {
			return errors.NewConflictError(template.ErrTemplateInUse.Error())
		}

		if err := uc.repo.Delete(txCtx, tpl.ID()); err != nil {
			uc.logger.Errorw("failed to delete template", "id", id, "error", err)
			return errors.NewInternalError("failed to delete template")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("template deleted", "id", id)
	return nil
}
