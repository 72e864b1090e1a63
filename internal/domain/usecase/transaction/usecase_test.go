package transaction

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
	coremocks "github.com/csmqbusy/personal-finances/mocks/port/core"
	persistencemocks "github.com/csmqbusy/personal-finances/mocks/port/persistence"
	usecasemocks "github.com/csmqbusy/personal-finances/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	useCase      *UseCase
	categories   *persistencemocks.MockCategoryRepository
	transactions *persistencemocks.MockTransactionRepository
	resolver     *usecasemocks.MockCategoryResolver
}

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	uow := persistencemocks.NewMockUnitOfWork(t)
	categories := persistencemocks.NewMockCategoryRepository(t)
	transactions := persistencemocks.NewMockTransactionRepository(t)
	resolver := usecasemocks.NewMockCategoryResolver(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetCategoryRepository(mock.Anything, entity.KindSpending).Return(categories).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything, entity.KindSpending).Return(transactions).Maybe()
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return &fixture{
		useCase:      NewUseCase(uow, resolver, timeProvider, logger, query.PageDefaults{DefaultPageSize: 2, MaxPageSize: 10}),
		categories:   categories,
		transactions: transactions,
		resolver:     resolver,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Without category the default one is used", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().GetDefault(mock.Anything, uint64(1)).Return(&entity.Category{ID: 1, Name: "Other", IsDefault: true}, nil).Once()
		f.transactions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tr *entity.Transaction) bool {
			return tr.CategoryID == 1 && tr.Amount == 500 && tr.Date.Equal(fixedTime)
		})).Return(nil).Once()

		transaction, err := f.useCase.Create(ctx, usecase.CreateTransactionInput{UserID: 1, Kind: entity.KindSpending, Amount: 500})

		require.NoError(t, err)
		assert.Equal(t, "Other", transaction.CategoryName)
	})

	t.Run("Category is resolved by name", func(t *testing.T) {
		f := newFixture(t)
		ref := entity.CategoryRef{Name: ptr("food")}
		f.resolver.EXPECT().Resolve(mock.Anything, uint64(1), entity.KindSpending, ref).Return(uint64(4), nil).Once()
		f.categories.EXPECT().GetByID(mock.Anything, uint64(1), uint64(4)).Return(&entity.Category{ID: 4, Name: "Food"}, nil).Once()
		f.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		transaction, err := f.useCase.Create(ctx, usecase.CreateTransactionInput{UserID: 1, Kind: entity.KindSpending, Amount: 5, Category: ref})

		require.NoError(t, err)
		assert.Equal(t, uint64(4), transaction.CategoryID)
		assert.Equal(t, "Food", transaction.CategoryName)
	})

	t.Run("Unknown category is not found", func(t *testing.T) {
		f := newFixture(t)
		ref := entity.CategoryRef{ID: ptr(uint64(99))}
		f.resolver.EXPECT().Resolve(mock.Anything, uint64(1), entity.KindSpending, ref).Return(uint64(0), errs.ErrCategoryNotFound).Once()

		_, err := f.useCase.Create(ctx, usecase.CreateTransactionInput{UserID: 1, Kind: entity.KindSpending, Amount: 5, Category: ref})

		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Non-positive amount is rejected before writing", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().GetDefault(mock.Anything, uint64(1)).Return(&entity.Category{ID: 1}, nil).Once()

		_, err := f.useCase.Create(ctx, usecase.CreateTransactionInput{UserID: 1, Kind: entity.KindSpending, Amount: 0})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes amount and category", func(t *testing.T) {
		f := newFixture(t)
		existing := &entity.Transaction{ID: 3, UserID: 1, CategoryID: 1, CategoryName: "Other", Amount: 10, Date: fixedTime}
		ref := entity.CategoryRef{ID: ptr(uint64(4))}
		f.transactions.EXPECT().GetByID(mock.Anything, uint64(1), uint64(3)).Return(existing, nil).Once()
		f.resolver.EXPECT().Resolve(mock.Anything, uint64(1), entity.KindSpending, ref).Return(uint64(4), nil).Once()
		f.categories.EXPECT().GetByID(mock.Anything, uint64(1), uint64(4)).Return(&entity.Category{ID: 4, Name: "Food"}, nil).Once()
		f.transactions.EXPECT().Update(mock.Anything, mock.MatchedBy(func(tr *entity.Transaction) bool {
			return tr.Amount == 20 && tr.CategoryID == 4
		})).Return(nil).Once()

		transaction, err := f.useCase.Update(ctx, 1, entity.KindSpending, 3, entity.TransactionUpdate{Amount: ptr(int64(20)), Category: ref})

		require.NoError(t, err)
		assert.Equal(t, "Food", transaction.CategoryName)
	})

	t.Run("Another user's transaction is not found", func(t *testing.T) {
		f := newFixture(t)
		f.transactions.EXPECT().GetByID(mock.Anything, uint64(2), uint64(3)).Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := f.useCase.Update(ctx, 2, entity.KindSpending, 3, entity.TransactionUpdate{})

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	rows := []*entity.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("Uses the default page size", func(t *testing.T) {
		f := newFixture(t)
		f.transactions.EXPECT().Count(mock.Anything, mock.MatchedBy(func(filter entity.TransactionFilter) bool {
			return filter.UserID == 1 && filter.Window == nil
		})).Return(int64(len(rows)), nil).Once()
		f.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter entity.TransactionFilter) bool {
			return filter.UserID == 1 && filter.CategoryIDs == nil &&
				assert.ObjectsAreEqual(&entity.PageWindow{Offset: 2, Limit: 2}, filter.Window)
		})).Return(rows[2:], nil).Once()

		page, err := f.useCase.List(ctx, usecase.ListTransactionsInput{UserID: 1, Kind: entity.KindSpending, Page: 2})

		require.NoError(t, err)
		assert.Equal(t, []*entity.Transaction{{ID: 3}}, page.Items)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 2, page.PageSize)
	})

	t.Run("Page beyond the end is empty without listing", func(t *testing.T) {
		f := newFixture(t)
		f.transactions.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(len(rows)), nil).Once()

		page, err := f.useCase.List(ctx, usecase.ListTransactionsInput{UserID: 1, Kind: entity.KindSpending, Page: math.MaxInt})

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("Resolved categories narrow the filter", func(t *testing.T) {
		f := newFixture(t)
		refs := []entity.CategoryRef{{Name: ptr("Food")}}
		f.resolver.EXPECT().ResolveMany(mock.Anything, uint64(1), entity.KindSpending, refs).Return([]uint64{4}, nil).Once()
		f.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter entity.TransactionFilter) bool {
			return assert.ObjectsAreEqual([]uint64{4}, filter.CategoryIDs) &&
				len(filter.Sort) == 1 && filter.Sort[0].Field == "date" && filter.Sort[0].Descending
		})).Return(rows, nil).Once()

		_, err := f.useCase.ListAll(ctx, 1, entity.KindSpending, usecase.QueryParams{Categories: refs, Sort: []string{"-date"}})

		require.NoError(t, err)
	})

	t.Run("Invalid range never reaches the repository", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.ListAll(ctx, 1, entity.KindSpending, usecase.QueryParams{MinAmount: ptr(int64(9)), MaxAmount: ptr(int64(1))})

		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.transactions.EXPECT().Summarize(mock.Anything, mock.Anything).Return([]entity.CategorySummary{
		{CategoryName: "Taxi", Amount: 5},
		{CategoryName: "Food", Amount: 70},
		{CategoryName: "Books", Amount: 70},
	}, nil).Once()

	items, err := f.useCase.Summary(context.Background(), 1, entity.KindSpending, usecase.QueryParams{Sort: []string{"amount"}})

	require.NoError(t, err)
	assert.Equal(t, []entity.CategorySummary{
		{CategoryName: "Books", Amount: 70},
		{CategoryName: "Food", Amount: 70},
		{CategoryName: "Taxi", Amount: 5},
	}, items)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.transactions.EXPECT().Delete(mock.Anything, uint64(1), uint64(3)).Return(errs.ErrTransactionNotFound).Once()

	err := f.useCase.Delete(context.Background(), 1, entity.KindSpending, 3)

	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}
