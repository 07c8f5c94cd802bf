package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the password and issues an access/refresh token pair.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh issues a new access token. The refresh token itself stays valid until it expires.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", errors.Wrap(err, "invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrTokenInvalid.WithDetails("token subject no longer exists")
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return "", errors.Wrap(err, "failed to generate new access token")
	}

	return accessToken, nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, userID)
}

// SeedUsers creates bootstrap accounts. Existing usernames are skipped.
func (srv *authService) SeedUsers(ctx context.Context, users []usecase.SeedUserInput) (int, error) {
	created := 0
	for _, input := range users {
		if !input.Role.IsValid() {
			return created, domainerrors.ErrValidationFailed.WithDetails("invalid role " + input.Role.String() + " for " + input.Username)
		}

		_, err := srv.userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return created, errors.Wrap(err, "failed to look up seed user")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return created, errors.Wrap(err, "failed to hash seed password")
		}

		user := &entity.User{
			ID:           uuid.Must(uuid.NewV7()),
			Username:     input.Username,
			Email:        input.Email,
			Role:         input.Role,
			PasswordHash: hash,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			return created, errors.Wrapf(err, "failed to create seed user %s", input.Username)
		}

		srv.log(ctx).Info("Seeded user", slog.String("username", user.Username), slog.String("role", user.Role.String()))
		created++
	}

	return created, nil
}
