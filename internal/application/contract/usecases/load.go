package usecases

import (
	"context"
	"errors"

	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// loadAccessible fetches a contract the caller may read: an admin of its
// company or a user of its supplier.
func loadAccessible(ctx context.Context, repo contract.Repository, log logger.Interface, identity *authorization.Identity, id string) (*contract.Contract, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load contract", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to load contract")
	}
	if c == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if !identity.CanAccessSupplier(c.SupplierID(), c.CompanyID()) {
		log.Warnw("contract access denied", "id", id, "user_id", userIDOf(identity))
		return nil, apperrors.NewForbiddenError("access to this contract is not allowed")
	}
	return c, nil
}

func userIDOf(identity *authorization.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.UserID
}

// applyTransition persists c conditionally on from. A lost race is a
// Conflict.
func applyTransition(ctx context.Context, repo contract.Repository, log logger.Interface, c *contract.Contract, from vo.ContractStatus) error {
	err := repo.ApplyTransition(ctx, c, from)
	if err == nil {
		return nil
	}
	if errors.Is(err, contract.ErrConcurrentModification) {
		log.Warnw("contract changed concurrently", "id", c.ID(), "from", from, "to", c.Status())
		return apperrors.NewConflictError("contract was modified by another request")
	}
	log.Errorw("failed to update contract status", "id", c.ID(), "from", from, "to", c.Status(), "error", err)
	return apperrors.NewInternalError("failed to update contract")
}
