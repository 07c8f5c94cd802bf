package usecase

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SeedUserInput describes a bootstrap account.
type SeedUserInput struct {
	Username string
	Password string
	Email    string
	Role     entity.Role
}

// AuthUsecase defines authentication operations.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SeedUsers creates the accounts that do not exist yet and returns how many were created.
	SeedUsers(ctx context.Context, users []SeedUserInput) (int, error)
}
