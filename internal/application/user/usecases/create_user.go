package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type SupplierReader interface {
	GetByID(ctx context.Context, id string) (*supplier.Supplier, error)
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	suppliers      SupplierReader
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	suppliers SupplierReader,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		suppliers:      suppliers,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

// Execute creates an account on behalf of identity. Company admins may only
// create admins and supplier users inside their own company.
func (uc *CreateUserUseCase) Execute(ctx context.Context, identity *authorization.Identity, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	role, ok := authorization.ParseUserRole(req.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}
	if identity == nil || !identity.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create users")
	}

	companyID := req.CompanyID
	if !identity.IsSuperAdmin() {
		if role == authorization.RoleSuperAdmin {
			return nil, errors.NewForbiddenError("only super admins can create super admins")
		}
		companyID = identity.CompanyID
	}
	if role != authorization.RoleSuperAdmin && !identity.IsAdminFor(companyID) {
		return nil, errors.NewForbiddenError("cannot create users for this company")
	}

	if role == authorization.RoleSupplier {
		if req.SupplierID == "" {
			return nil, errors.NewValidationError("supplier_id is required for supplier users")
		}
		s, err := uc.suppliers.GetByID(ctx, req.SupplierID)
		if err != nil {
			uc.logger.Errorw("failed to load supplier", "supplier_id", req.SupplierID, "error", err)
			return nil, errors.NewInternalError("failed to create user")
		}
		if s == nil || s.CompanyID() != companyID {
			return nil, errors.NewValidationError("supplier does not belong to this company")
		}
	}

	return uc.create(ctx, user.NewUserParams{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Surname:    req.Surname,
		Role:       role,
		CompanyID:  companyID,
		SupplierID: req.SupplierID,
		Now:        biztime.NowUTC(),
	})
}

// CreateSuperAdmin bootstraps a super admin without a calling identity. It
// backs the CLI.
func (uc *CreateUserUseCase) CreateSuperAdmin(ctx context.Context, email, password, name, surname string) (*dto.UserDTO, error) {
	return uc.create(ctx, user.NewUserParams{
		Email:    email,
		Password: password,
		Name:     name,
		Surname:  surname,
		Role:     authorization.RoleSuperAdmin,
		Now:      biztime.NowUTC(),
	})
}

func (uc *CreateUserUseCase) create(ctx context.Context, params user.NewUserParams) (*dto.UserDTO, error) {
	u, err := user.NewUser(params, uc.passwordHasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, u.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role(), "company_id", u.CompanyID())
	return dto.ToUserDTO(u), nil
}
