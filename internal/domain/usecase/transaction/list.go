package transaction

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
)

// Filter resolves category references and composes the predicate set of a query
func (u *UseCase) Filter(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	params usecase.QueryParams,
) (entity.TransactionFilter, error) {
	var categoryIDs []uint64
	if len(params.Categories) > 0 {
		ids, err := u.resolver.ResolveMany(ctx, userID, kind, params.Categories)
		if err != nil {
			return entity.TransactionFilter{}, err
		}
		categoryIDs = ids
	}

	return query.BuildTransactionFilter(userID, kind, categoryIDs, params)
}

// List returns one page of the matching transactions
func (u *UseCase) List(ctx context.Context, input usecase.ListTransactionsInput) (entity.Page[*entity.Transaction], error) {
	page, size := u.pages.Normalize(input.Page, input.PageSize)

	filter, err := u.Filter(ctx, input.UserID, input.Kind, input.Query)
	if err != nil {
		return entity.Page[*entity.Transaction]{}, err
	}

	repo := u.uow.GetTransactionRepository(ctx, input.Kind)
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Transaction]{}, err
	}

	offset, ok := query.Window(page, size, total)
	if !ok {
		return query.NewPage[*entity.Transaction](nil, page, size, total), nil
	}
	filter.Window = &entity.PageWindow{Offset: offset, Limit: size}

	transactions, err := repo.List(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Transaction]{}, err
	}
	return query.NewPage(transactions, page, size, total), nil
}

// ListAll returns every matching transaction
func (u *UseCase) ListAll(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	params usecase.QueryParams,
) ([]*entity.Transaction, error) {
	filter, err := u.Filter(ctx, userID, kind, params)
	if err != nil {
		return nil, err
	}

	return u.uow.GetTransactionRepository(ctx, kind).List(ctx, filter)
}

// Summary sums the matching transactions per category, by amount desc then name asc
func (u *UseCase) Summary(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	params usecase.QueryParams,
) ([]entity.CategorySummary, error) {
	filter, err := u.Filter(ctx, userID, kind, params)
	if err != nil {
		return nil, err
	}
	filter.Sort = nil

	items, err := u.uow.GetTransactionRepository(ctx, kind).Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}
	entity.SortCategorySummaries(items)
	return items, nil
}
