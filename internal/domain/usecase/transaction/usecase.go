package transaction

import (
	"context"
	"errors"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
)

// UseCase handles spendings and incomes
type UseCase struct {
	uow          persistence.UnitOfWork
	resolver     usecase.CategoryResolver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	pages        query.PageDefaults
}

// NewUseCase creates a new transaction UseCase
func NewUseCase(
	uow persistence.UnitOfWork,
	resolver usecase.CategoryResolver,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	pages query.PageDefaults,
) *UseCase {
	return &UseCase{
		uow:          uow,
		resolver:     resolver,
		timeProvider: timeProvider,
		logger:       logger,
		pages:        pages,
	}
}

// Create records a transaction; without a category reference it lands in the default category
func (u *UseCase) Create(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	categoryID, categoryName, err := u.categoryFor(ctx, input.UserID, input.Kind, input.Category)
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(
		input.UserID,
		input.Kind,
		categoryID,
		input.Amount,
		input.Description,
		input.Date,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetTransactionRepository(ctx, input.Kind).Create(ctx, transaction); err != nil {
		u.logger.Error("Failed to create transaction", map[string]any{
			"userId":     input.UserID,
			"kind":       input.Kind,
			"categoryId": categoryID,
			"error":      err.Error(),
		})
		return nil, err
	}
	transaction.CategoryName = categoryName

	u.logger.Info("Transaction created", map[string]any{
		"userId":        input.UserID,
		"kind":          input.Kind,
		"transactionId": transaction.ID,
		"amount":        transaction.Amount,
	})
	return transaction, nil
}

// categoryFor resolves the reference, falling back to the default category
func (u *UseCase) categoryFor(ctx context.Context, userID uint64, kind entity.TransactionKind, ref entity.CategoryRef) (uint64, string, error) {
	if ref.IsEmpty() {
		def, err := u.uow.GetCategoryRepository(ctx, kind).GetDefault(ctx, userID)
		if err != nil {
			return 0, "", err
		}
		return def.ID, def.Name, nil
	}

	id, err := u.resolver.Resolve(ctx, userID, kind, ref)
	if err != nil {
		return 0, "", err
	}
	category, err := u.uow.GetCategoryRepository(ctx, kind).GetByID(ctx, userID, id)
	if err != nil {
		return 0, "", err
	}
	return category.ID, category.Name, nil
}

// Get returns one transaction of the user
func (u *UseCase) Get(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64) (*entity.Transaction, error) {
	return u.uow.GetTransactionRepository(ctx, kind).GetByID(ctx, userID, id)
}

// Update applies a partial update; the category may be changed by id or name
func (u *UseCase) Update(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	id uint64,
	update entity.TransactionUpdate,
) (*entity.Transaction, error) {
	repo := u.uow.GetTransactionRepository(ctx, kind)

	transaction, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var categoryID uint64
	categoryName := transaction.CategoryName
	if !update.Category.IsEmpty() {
		categoryID, categoryName, err = u.categoryFor(ctx, userID, kind, update.Category)
		if err != nil {
			return nil, err
		}
	}

	if err := transaction.Apply(update, categoryID); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, transaction); err != nil {
		u.logger.Error("Failed to update transaction", map[string]any{
			"userId":        userID,
			"kind":          kind,
			"transactionId": id,
			"error":         err.Error(),
		})
		return nil, err
	}
	transaction.CategoryName = categoryName

	u.logger.Info("Transaction updated", map[string]any{
		"userId":        userID,
		"kind":          kind,
		"transactionId": id,
	})
	return transaction, nil
}

// Delete removes a transaction of the user
func (u *UseCase) Delete(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64) error {
	if err := u.uow.GetTransactionRepository(ctx, kind).Delete(ctx, userID, id); err != nil {
		if !errors.Is(err, errs.ErrTransactionNotFound) {
			u.logger.Error("Failed to delete transaction", map[string]any{
				"userId":        userID,
				"kind":          kind,
				"transactionId": id,
				"error":         err.Error(),
			})
		}
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"userId":        userID,
		"kind":          kind,
		"transactionId": id,
	})
	return nil
}
