package persistence

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// UserRepository defines the methods to interact with user accounts
type UserRepository interface {
	// Create stores a new user and sets its ID
	//
	// Possible errors:
	// - ErrUserAlreadyExists: If the username or email is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by exact username
	//
	// Possible errors:
	// - ErrUserNotFound: If no such user exists
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update persists the mutable fields of a user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Update(ctx context.Context, user *entity.User) error
}
