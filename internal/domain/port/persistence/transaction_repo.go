package persistence

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// TransactionRepository stores spendings or incomes, depending on the kind it was built for
type TransactionRepository interface {
	// Create stores a new transaction and sets its ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction owned by the user, with its category name
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is absent or owned by another user
	GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error)

	// Update persists amount, description, date and category
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction owned by the user
	Delete(ctx context.Context, userID, id uint64) error

	// List returns the transactions matching the filter; without sort options rows are in id order
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// Summarize sums matching transactions per category, by amount desc then name asc
	Summarize(ctx context.Context, filter entity.TransactionFilter) ([]entity.CategorySummary, error)

	// Count returns how many transactions match the filter; the window is ignored
	Count(ctx context.Context, filter entity.TransactionFilter) (int64, error)

	// CountByCategory returns how many transactions reference the category
	CountByCategory(ctx context.Context, userID, categoryID uint64) (int64, error)

	// DeleteByCategory removes every transaction of the category
	DeleteByCategory(ctx context.Context, userID, categoryID uint64) (int64, error)

	// ReassignCategory moves every transaction of one category to another
	ReassignCategory(ctx context.Context, userID, fromID, toID uint64) (int64, error)
}
