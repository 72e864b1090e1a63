package persistence

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// CategoryRepository stores the categories of one transaction kind
// Every lookup is scoped by user; another user's category is reported as not found
type CategoryRepository interface {
	// Create stores a new category and sets its ID
	//
	// Possible errors:
	// - ErrCategoryAlreadyExists: If the user already has a category with that name
	Create(ctx context.Context, category *entity.Category) error

	// GetByID retrieves a category owned by the user
	//
	// Possible errors:
	// - ErrCategoryNotFound: If the category is absent or owned by another user
	GetByID(ctx context.Context, userID, id uint64) (*entity.Category, error)

	// GetByName retrieves a category by case-insensitive exact name
	//
	// Possible errors:
	// - ErrCategoryNotFound: If no category matches
	GetByName(ctx context.Context, userID uint64, name string) (*entity.Category, error)

	// GetDefault retrieves the user's default category
	GetDefault(ctx context.Context, userID uint64) (*entity.Category, error)

	// List returns the user's categories ordered by name
	List(ctx context.Context, userID uint64) ([]*entity.Category, error)

	// Update persists the category name
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category; its transactions must have been handled first
	Delete(ctx context.Context, userID, id uint64) error
}
