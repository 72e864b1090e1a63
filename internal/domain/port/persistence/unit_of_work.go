package persistence

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetCategoryRepository returns a category repository of the given kind bound to the current transaction
	GetCategoryRepository(ctx context.Context, kind entity.TransactionKind) CategoryRepository

	// GetTransactionRepository returns a spending or income repository bound to the current transaction
	GetTransactionRepository(ctx context.Context, kind entity.TransactionKind) TransactionRepository

	// GetGoalRepository returns a saving goal repository bound to the current transaction
	GetGoalRepository(ctx context.Context) GoalRepository
}

// RunInTransaction runs fn inside a transaction, committing on success and rolling back otherwise
func RunInTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
		if err != nil {
			_ = uow.Rollback(txCtx)
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	return uow.Commit(txCtx)
}
