package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, identity *authorization.Identity) (*dto.UserDTO, error) {
	if identity == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	u, err := uc.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", identity.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserDTO(u), nil
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	if identity == nil || !identity.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	filter := user.ListFilter{
		CompanyID:  identity.ScopeCompanyID(),
		SupplierID: req.SupplierID,
	}
	if identity.IsSuperAdmin() {
		filter.CompanyID = req.CompanyID
	}
	if req.Role != "" {
		role, ok := authorization.ParseUserRole(req.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}

	p := utils.ValidatePagination(req.Page, req.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "company_id", filter.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &dto.ListUsersResponse{
		Items:    dto.ToUserDTOList(users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
