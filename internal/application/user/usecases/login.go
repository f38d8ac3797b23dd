package usecases

import (
	"context"
	"strings"

	"github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

type JWTService interface {
	Generate(userID string, role authorization.UserRole) (string, int64, error)
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := u.VerifyPassword(req.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password verification failed", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	token, expiresIn, err := uc.jwtService.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to login")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "role", u.Role())

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.ToUserDTO(u),
	}, nil
}
