package usecase

import (
	"context"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// CreateTransactionInput is a new spending or income; an empty category means the default one
type CreateTransactionInput struct {
	UserID      uint64
	Kind        entity.TransactionKind
	Amount      int64
	Description *string
	Date        *time.Time
	Category    entity.CategoryRef
}

// QueryParams are the optional filters shared by list, summary and export
type QueryParams struct {
	Categories []entity.CategoryRef
	MinAmount  *int64
	MaxAmount  *int64
	From       *time.Time
	To         *time.Time
	Search     string
	Sort       []string
}

// ListTransactionsInput is a filtered, sorted and paginated listing
type ListTransactionsInput struct {
	UserID   uint64
	Kind     entity.TransactionKind
	Query    QueryParams
	Page     int
	PageSize int
}

// TransactionUseCase defines spending and income operations
type TransactionUseCase interface {
	Create(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)
	Get(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64) (*entity.Transaction, error)
	Update(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64, update entity.TransactionUpdate) (*entity.Transaction, error)
	Delete(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64) error

	// List returns one page of matching transactions
	List(ctx context.Context, input ListTransactionsInput) (entity.Page[*entity.Transaction], error)

	// ListAll returns every matching transaction, used by export
	ListAll(ctx context.Context, userID uint64, kind entity.TransactionKind, query QueryParams) ([]*entity.Transaction, error)

	// Summary sums matching transactions per category
	Summary(ctx context.Context, userID uint64, kind entity.TransactionKind, query QueryParams) ([]entity.CategorySummary, error)
}
