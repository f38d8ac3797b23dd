package usecases

import (
	"context"
	"fmt"

	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
)

// ResolveIdentityUseCase turns a verified token subject into an Identity.
// Missing and inactive users resolve to nil.
type ResolveIdentityUseCase struct {
	userRepo user.Repository
}

func NewResolveIdentityUseCase(userRepo user.Repository) *ResolveIdentityUseCase {
	return &ResolveIdentityUseCase{userRepo: userRepo}
}

func (uc *ResolveIdentityUseCase) Execute(ctx context.Context, userID string) (*authorization.Identity, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if u == nil || !u.IsActive() {
		return nil, nil
	}
	return u.Identity(), nil
}
