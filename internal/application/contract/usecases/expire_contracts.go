package usecases

import (
	"context"
	"errors"

	"github.com/prism-finance/prism/internal/domain/contract"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const defaultExpiryBatchSize = 200

// ExpireContractsUseCase moves every non-terminal contract past its expiry
// date to expired. It is run periodically by the scheduler.
type ExpireContractsUseCase struct {
	contracts contract.Repository
	notifier  Notifier
	batchSize int
	logger    logger.Interface
}

func NewExpireContractsUseCase(contracts contract.Repository, notifier Notifier, batchSize int, logger logger.Interface) *ExpireContractsUseCase {
	if batchSize <= 0 {
		batchSize = defaultExpiryBatchSize
	}
	return &ExpireContractsUseCase{
		contracts: contracts,
		notifier:  notifier,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Execute returns the number of contracts expired. Per-contract failures are
// logged and skipped; only a failed lookup is returned.
func (uc *ExpireContractsUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()
	candidates, err := uc.contracts.ListExpirable(ctx, now, uc.batchSize)
	if err != nil {
		uc.logger.Errorw("failed to list expirable contracts", "error", err)
		return 0, err
	}

	expired := 0
	for _, c := range candidates {
		if ctx.Err() != nil {
			return expired, ctx.Err()
		}

		from, err := c.Expire(now)
		if err != nil {
			uc.logger.Warnw("skipping contract that cannot expire", "id", c.ID(), "status", c.Status(), "error", err)
			continue
		}
		if err := uc.contracts.ApplyTransition(ctx, c, from); err != nil {
			if errors.Is(err, contract.ErrConcurrentModification) {
				uc.logger.Debugw("contract changed before expiry", "id", c.ID())
			} else {
				uc.logger.Errorw("failed to expire contract", "id", c.ID(), "error", err)
			}
			continue
		}

		expired++
		uc.notifier.Dispatch(ctx, expiredEvent(c))
	}

	if expired > 0 {
		uc.logger.Infow("contracts expired", "count", expired, "candidates", len(candidates))
	}
	return expired, nil
}
