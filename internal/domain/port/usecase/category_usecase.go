package usecase

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// DeleteCategoryInput describes a category deletion and what happens to its transactions
type DeleteCategoryInput struct {
	UserID      uint64
	Kind        entity.TransactionKind
	CategoryID  uint64
	Disposition entity.Disposition
	Target      string // category name for to_existing and to_new
}

// CategoryResolver maps category references to canonical ids
type CategoryResolver interface {
	// Resolve returns the id of the referenced category
	//
	// Possible errors:
	// - ErrCategoryMissing: If the reference is empty
	// - ErrCategoryNotFound: If nothing matches
	Resolve(ctx context.Context, userID uint64, kind entity.TransactionKind, ref entity.CategoryRef) (uint64, error)

	// ResolveMany resolves each unique reference once and returns the id set in first-seen order
	ResolveMany(ctx context.Context, userID uint64, kind entity.TransactionKind, refs []entity.CategoryRef) ([]uint64, error)
}

// CategoryUseCase defines category management
type CategoryUseCase interface {
	CategoryResolver

	List(ctx context.Context, userID uint64, kind entity.TransactionKind) ([]*entity.Category, error)
	Create(ctx context.Context, userID uint64, kind entity.TransactionKind, name string) (*entity.Category, error)
	Rename(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64, name string) (*entity.Category, error)

	// Delete removes a category applying the disposition to its transactions in one transaction
	Delete(ctx context.Context, input DeleteCategoryInput) error
}
