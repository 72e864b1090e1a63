package auth

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/category"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything longer
)

// UseCase handles sign-up, sign-in and token authentication
type UseCase struct {
	uow                 persistence.UnitOfWork
	hasher              service.PasswordHasher
	tokens              service.TokenManager
	timeProvider        coreport.TimeProvider
	logger              coreport.Logger
	defaultCategoryName string
}

// NewUseCase creates a new auth UseCase
func NewUseCase(
	uow persistence.UnitOfWork,
	hasher service.PasswordHasher,
	tokens service.TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	categories category.Options,
) *UseCase {
	return &UseCase{
		uow:                 uow,
		hasher:              hasher,
		tokens:              tokens,
		timeProvider:        timeProvider,
		logger:              logger,
		defaultCategoryName: categories.DefaultName,
	}
}

// SignUp creates the user together with the default spending and income categories
func (u *UseCase) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.User, error) {
	if n := utf8.RuneCountInString(input.Password); n < minPasswordLength || len(input.Password) > maxPasswordLength {
		return nil, errs.NewValidationError("password", "must be between 8 and 72 characters", errs.ErrInvalidRequest)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(input.Username, input.Email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	err = persistence.RunInTransaction(ctx, u.uow, func(txCtx context.Context) error {
		if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		return category.CreateDefaults(txCtx, u.uow, user.ID, u.defaultCategoryName)
	})
	if err != nil {
		if !errors.Is(err, errs.ErrUserAlreadyExists) {
			u.logger.Error("Failed to sign up user", map[string]any{
				"username": user.Username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User signed up", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})
	return user, nil
}

// SignIn checks the credentials of an active user and issues an access token
func (u *UseCase) SignIn(ctx context.Context, username, password string) (*entity.User, service.AccessToken, error) {
	user, err := u.uow.GetUserRepository(ctx).GetByUsername(ctx, username)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil, service.AccessToken{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, service.AccessToken{}, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Warn("Failed sign-in attempt", map[string]any{"userId": user.ID})
		return nil, service.AccessToken{}, err
	}
	if !user.Active {
		return nil, service.AccessToken{}, errs.ErrInactiveUser
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue access token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, service.AccessToken{}, err
	}

	u.logger.Info("User signed in", map[string]any{"userId": user.ID})
	return user, token, nil
}

// Authenticate resolves a token to its active user
func (u *UseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := u.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, errs.ErrInactiveUser
	}
	return user, nil
}

// GetProfile returns the user
func (u *UseCase) GetProfile(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// Deactivate soft-disables the user; its data is kept
func (u *UseCase) Deactivate(ctx context.Context, userID uint64) error {
	repo := u.uow.GetUserRepository(ctx)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Deactivate()
	if err := repo.Update(ctx, user); err != nil {
		return err
	}

	u.logger.Info("User deactivated", map[string]any{"userId": userID})
	return nil
}
