package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type CreateConditionsUseCase struct {
	repo     generalconditions.Repository
	txMgr    TransactionManager
	notifier Notifier
	logger   logger.Interface
}

func NewCreateConditionsUseCase(repo generalconditions.Repository, txMgr TransactionManager, notifier Notifier, logger logger.Interface) *CreateConditionsUseCase {
	return &CreateConditionsUseCase{repo: repo, txMgr: txMgr, notifier: notifier, logger: logger}
}

// Execute records a new version. An active version retires the previous
// one and asks every supplier of the company to accept it.
func (uc *CreateConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.CreateConditionsRequest) (*dto.ConditionsDTO, error) {
	companyID := req.CompanyID
	if identity != nil && !identity.IsSuperAdmin() {
		companyID = identity.CompanyID
	}
	if companyID == "" {
		return nil, errors.NewValidationError("company_id is required")
	}
	if !identity.IsAdminFor(companyID) {
		return nil, errors.NewForbiddenError("only company admins can manage general conditions")
	}

	gc, err := generalconditions.NewGeneralConditions(generalconditions.NewGeneralConditionsParams{
		CompanyID: companyID,
		Version:   req.Version,
		Content:   req.Content,
		IsActive:  req.IsActive,
		CreatedBy: identity.UserID,
		Now:       biztime.NowUTC(),
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Create(txCtx, gc); err != nil {
			return err
		}
		if gc.IsActive() {
			return activate(txCtx, uc.repo, gc)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create general conditions", "company_id", companyID, "error", err)
		return nil, errors.NewInternalError("failed to create general conditions")
	}

	uc.logger.Infow("general conditions created", "id", gc.ID(), "company_id", companyID, "version", gc.Version(), "active", gc.IsActive())
	if gc.IsActive() {
		uc.notifier.Dispatch(ctx, acceptanceRequiredEvent(gc))
	}
	return dto.ToConditionsDTO(gc), nil
}

type UpdateConditionsUseCase struct {
	repo     generalconditions.Repository
	txMgr    TransactionManager
	notifier Notifier
	logger   logger.Interface
}

func NewUpdateConditionsUseCase(repo generalconditions.Repository, txMgr TransactionManager, notifier Notifier, logger logger.Interface) *UpdateConditionsUseCase {
	return &UpdateConditionsUseCase{repo: repo, txMgr: txMgr, notifier: notifier, logger: logger}
}

func (uc *UpdateConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateConditionsRequest) (*dto.ConditionsDTO, error) {
	gc, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}

	activated, err := gc.Update(generalconditions.UpdateParams{
		Version:  req.Version,
		Content:  req.Content,
		IsActive: req.IsActive,
	}, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Update(txCtx, gc); err != nil {
			return err
		}
		if activated {
			return activate(txCtx, uc.repo, gc)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update general conditions", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update general conditions")
	}

	uc.logger.Infow("general conditions updated", "id", id, "activated", activated)
	if activated {
		uc.notifier.Dispatch(ctx, acceptanceRequiredEvent(gc))
	}
	return dto.ToConditionsDTO(gc), nil
}

type DeleteConditionsUseCase struct {
	repo        generalconditions.Repository
	acceptances generalconditions.AcceptanceRepository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewDeleteConditionsUseCase(repo generalconditions.Repository, acceptances generalconditions.AcceptanceRepository, txMgr TransactionManager, logger logger.Interface) *DeleteConditionsUseCase {
	return &DeleteConditionsUseCase{repo: repo, acceptances: acceptances, txMgr: txMgr, logger: logger}
}

// Execute removes a version no supplier has accepted yet.
func (uc *DeleteConditionsUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) error {
	gc, err := loadManaged(ctx, uc.repo, uc.logger, identity, id)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.acceptances.CountByConditions(txCtx, gc.ID())
		if err != nil {
			uc.logger.Errorw("failed to count acceptances", "id", id, "error", err)
			return errors.NewInternalError("failed to delete general conditions")
		}
		if count > 0 {
			return errors.NewConflictError("general conditions already accepted by suppliers cannot be deleted")
		}
		if err := uc.repo.Delete(txCtx, gc.ID()); err != nil {
			uc.logger.Errorw("failed to delete general conditions", "id", id, "error", err)
			return errors.NewInternalError("failed to delete general conditions")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("general conditions deleted", "id", id)
	return nil
}
