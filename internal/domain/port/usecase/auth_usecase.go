package usecase

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
)

// SignUpInput is the sign-up form
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// AuthUseCase defines account and session operations
type AuthUseCase interface {
	// SignUp creates the user and both default categories atomically
	SignUp(ctx context.Context, input SignUpInput) (*entity.User, error)

	// SignIn verifies credentials and issues an access token
	SignIn(ctx context.Context, username, password string) (*entity.User, service.AccessToken, error)

	// Authenticate resolves an access token to an active user
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// GetProfile returns the user
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)

	// Deactivate soft-disables the user
	Deactivate(ctx context.Context, userID uint64) error
}
