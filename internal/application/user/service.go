package user

import (
	"context"

	"github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/application/user/usecases"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type ServiceDDD struct {
	login       *usecases.LoginWithPasswordUseCase
	createUser  *usecases.CreateUserUseCase
	currentUser *usecases.GetCurrentUserUseCase
	listUsers   *usecases.ListUsersUseCase
	resolve     *usecases.ResolveIdentityUseCase
}

func NewServiceDDD(
	userRepo user.Repository,
	suppliers usecases.SupplierReader,
	passwordHasher user.PasswordHasher,
	jwtService usecases.JWTService,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		login:       usecases.NewLoginWithPasswordUseCase(userRepo, passwordHasher, jwtService, logger),
		createUser:  usecases.NewCreateUserUseCase(userRepo, suppliers, passwordHasher, logger),
		currentUser: usecases.NewGetCurrentUserUseCase(userRepo, logger),
		listUsers:   usecases.NewListUsersUseCase(userRepo, logger),
		resolve:     usecases.NewResolveIdentityUseCase(userRepo),
	}
}

func (s *ServiceDDD) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.login.Execute(ctx, req)
}

func (s *ServiceDDD) CreateUser(ctx context.Context, identity *authorization.Identity, req dto.CreateUserRequest) (*dto.UserDTO, error) {
	return s.createUser.Execute(ctx, identity, req)
}

func (s *ServiceDDD) CreateSuperAdmin(ctx context.Context, email, password, name, surname string) (*dto.UserDTO, error) {
	return s.createUser.CreateSuperAdmin(ctx, email, password, name, surname)
}

func (s *ServiceDDD) CurrentUser(ctx context.Context, identity *authorization.Identity) (*dto.UserDTO, error) {
	return s.currentUser.Execute(ctx, identity)
}

func (s *ServiceDDD) ListUsers(ctx context.Context, identity *authorization.Identity, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	return s.listUsers.Execute(ctx, identity, req)
}

// ResolveIdentity is used by the auth middleware.
func (s *ServiceDDD) ResolveIdentity(ctx context.Context, userID string) (*authorization.Identity, error) {
	return s.resolve.Execute(ctx, userID)
}
