package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type CancelContractUseCase struct {
	contracts contract.Repository
	notifier  Notifier
	logger    logger.Interface
}

func NewCancelContractUseCase(contracts contract.Repository, notifier Notifier, logger logger.Interface) *CancelContractUseCase {
	return &CancelContractUseCase{
		contracts: contracts,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *CancelContractUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string) (*dto.ContractDTO, error) {
	uc.logger.Infow("executing cancel contract use case", "id", id, "user_id", userIDOf(identity))

	c, err := loadAccessible(ctx, uc.contracts, uc.logger, identity, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdminFor(c.CompanyID()) {
		return nil, errors.NewForbiddenError("only company admins can cancel contracts")
	}

	from, err := c.Cancel(biztime.NowUTC())
	if err != nil {
		return nil, errors.NewConflictError("contract cannot be cancelled in its current status", err.Error())
	}
	if err := applyTransition(ctx, uc.contracts, uc.logger, c, from); err != nil {
		return nil, err
	}

	uc.logger.Infow("contract cancelled", "id", c.ID(), "from", from)

	uc.notifier.Dispatch(ctx, cancelledEvent(c))

	return dto.ToContractDTO(c), nil
}
