package usecases

import (
	"context"
	"errors"

	"github.com/prism-finance/prism/internal/application/contract/dto"
	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SignContractUseCase struct {
	contracts contract.Repository
	notifier  Notifier
	logger    logger.Interface
}

func NewSignContractUseCase(contracts contract.Repository, notifier Notifier, logger logger.Interface) *SignContractUseCase {
	return &SignContractUseCase{
		contracts: contracts,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute signs one side of a contract. Only a user of the contract's
// supplier may sign the supplier side; only an admin of its company (or a
// super admin) may sign the admin side.
func (uc *SignContractUseCase) Execute(ctx context.Context, identity *authorization.Identity, id string, party vo.Party, req dto.SignContractRequest) (*dto.ContractDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing sign contract use case", "id", id, "party", party, "user_id", userIDOf(identity))

	c, err := loadAccessible(ctx, uc.contracts, log, identity, id)
	if err != nil {
		return nil, err
	}
	if !canSign(identity, c, party) {
		return nil, apperrors.NewForbiddenError("you cannot sign this side of the contract")
	}

	now := biztime.NowUTC()
	from, err := c.Sign(party, req.SignerName, req.SignerSurname, identity.UserID, now)
	switch {
	case err == nil:
	case errors.Is(err, contract.ErrContractExpired):
		uc.expire(ctx, c)
		return nil, apperrors.NewConflictError(contract.ErrContractExpired.Error())
	case errors.Is(err, contract.ErrInvalidTransition):
		return nil, apperrors.NewConflictError("contract cannot be signed in its current status", err.Error())
	case errors.Is(err, contract.ErrSignerRequired), errors.Is(err, contract.ErrInvalidParty):
		return nil, apperrors.NewValidationError(err.Error())
	default:
		log.Errorw("failed to sign contract", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to sign contract")
	}

	if err := applyTransition(ctx, uc.contracts, log, c, from); err != nil {
		return nil, err
	}

	log.Infow("contract signed", "id", c.ID(), "party", party, "from", from, "to", c.Status())

	uc.notifier.Dispatch(ctx, signedEvent(c, party))

	return dto.ToContractDTO(c), nil
}

func canSign(identity *authorization.Identity, c *contract.Contract, party vo.Party) bool {
	switch party {
	case vo.PartySupplier:
		return identity != nil &&
			identity.Role == authorization.RoleSupplier &&
			identity.SupplierID == c.SupplierID()
	case vo.PartyAdmin:
		return identity.IsAdminFor(c.CompanyID())
	}
	return false
}

// expire moves a contract found past its expiry during signing. A lost race
// means someone else already moved it, so nothing is announced.
func (uc *SignContractUseCase) expire(ctx context.Context, c *contract.Contract) {
	from, err := c.Expire(biztime.NowUTC())
	if err != nil {
		uc.logger.Warnw("failed to expire contract", "id", c.ID(), "error", err)
		return
	}
	if err := uc.contracts.ApplyTransition(ctx, c, from); err != nil {
		uc.logger.Warnw("failed to persist contract expiry", "id", c.ID(), "error", err)
		return
	}
	uc.logger.Infow("contract expired on sign attempt", "id", c.ID(), "from", from)
	uc.notifier.Dispatch(ctx, expiredEvent(c))
}
