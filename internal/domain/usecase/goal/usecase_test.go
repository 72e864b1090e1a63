package goal

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	useCase *UseCase
	uow     *persistencemocks.MockUnitOfWork
	goals   *persistencemocks.MockGoalRepository
}

func newFixture(t *testing.T) *fixture {
	uow := persistencemocks.NewMockUnitOfWork(t)
	goals := persistencemocks.NewMockGoalRepository(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetGoalRepository(mock.Anything).Return(goals).Maybe()
	timeProvider.EXPECT().Today().Return(today).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return &fixture{
		useCase: NewUseCase(uow, timeProvider, logger, query.DefaultPageDefaults),
		uow:     uow,
		goals:   goals,
	}
}

func (f *fixture) expectTransaction(committed bool) {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	if committed {
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	}
}

func inProgressGoal() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:            5,
		UserID:        1,
		Name:          "Bike",
		TargetAmount:  1000,
		CurrentAmount: 100,
		StartDate:     today.AddDate(0, -1, 0),
		TargetDate:    today.AddDate(0, 1, 0),
		Status:        entity.GoalInProgress,
	}
}

func TestCreate(t *testing.T) {
	t.Run("Goal at target is stored completed", func(t *testing.T) {
		f := newFixture(t)
		f.goals.EXPECT().Create(mock.Anything, mock.MatchedBy(func(g *entity.SavingGoal) bool {
			return g.Status == entity.GoalCompleted && g.EndDate != nil && g.StartDate.Equal(today)
		})).Return(nil).Once()

		goal, err := f.useCase.Create(context.Background(), entity.NewGoalParams{
			UserID:        1,
			Name:          "Phone",
			TargetAmount:  300,
			CurrentAmount: 300,
			TargetDate:    today.AddDate(0, 2, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.GoalCompleted, goal.Status)
	})

	t.Run("Invalid dates never reach the repository", func(t *testing.T) {
		f := newFixture(t)
		start := today

		_, err := f.useCase.Create(context.Background(), entity.NewGoalParams{
			Name:         "Phone",
			TargetAmount: 300,
			StartDate:    &start,
			TargetDate:   today.AddDate(0, 0, -1),
		})

		assert.ErrorIs(t, err, errs.ErrInvalidGoalDates)
	})
}

func TestGet(t *testing.T) {
	t.Run("Past target date is reported overdue without writing", func(t *testing.T) {
		f := newFixture(t)
		stored := inProgressGoal()
		stored.TargetDate = today.AddDate(0, 0, -1)
		f.goals.EXPECT().GetByID(mock.Anything, uint64(1), uint64(5)).Return(stored, nil).Once()

		goal, err := f.useCase.Get(context.Background(), 1, 5)

		require.NoError(t, err)
		assert.Equal(t, entity.GoalOverdue, goal.Status)
		require.NotNil(t, goal.EndDate)
		assert.Equal(t, today, *goal.EndDate)
	})

	t.Run("Another user's goal is not found", func(t *testing.T) {
		f := newFixture(t)
		f.goals.EXPECT().GetByID(mock.Anything, uint64(2), uint64(5)).Return(nil, errs.ErrGoalNotFound).Once()

		_, err := f.useCase.Get(context.Background(), 2, 5)

		assert.ErrorIs(t, err, errs.ErrGoalNotFound)
	})
}

func TestApplyPayment(t *testing.T) {
	t.Run("Payment is persisted", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction(true)
		f.goals.EXPECT().GetByID(mock.Anything, uint64(1), uint64(5)).Return(inProgressGoal(), nil).Once()
		f.goals.EXPECT().Update(mock.Anything, mock.MatchedBy(func(g *entity.SavingGoal) bool {
			return g.CurrentAmount == 1000 && g.Status == entity.GoalCompleted
		})).Return(nil).Once()

		goal, err := f.useCase.ApplyPayment(context.Background(), 1, 5, 900)

		require.NoError(t, err)
		assert.Equal(t, entity.GoalCompleted, goal.Status)
	})

	t.Run("Payment below zero rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.expectTransaction(false)
		f.goals.EXPECT().GetByID(mock.Anything, uint64(1), uint64(5)).Return(inProgressGoal(), nil).Once()

		goal, err := f.useCase.ApplyPayment(context.Background(), 1, 5, -150)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, goal)
	})

	t.Run("Overdue status is persisted on the next mutation", func(t *testing.T) {
		f := newFixture(t)
		stored := inProgressGoal()
		stored.TargetDate = today.AddDate(0, 0, -3)
		f.expectTransaction(true)
		f.goals.EXPECT().GetByID(mock.Anything, uint64(1), uint64(5)).Return(stored, nil).Once()
		f.goals.EXPECT().Update(mock.Anything, mock.MatchedBy(func(g *entity.SavingGoal) bool {
			return g.Status == entity.GoalOverdue && g.EndDate != nil
		})).Return(nil).Once()

		_, err := f.useCase.ApplyPayment(context.Background(), 1, 5, 10)

		require.NoError(t, err)
	})
}

func TestList(t *testing.T) {
	t.Run("Status filter and sort are parsed", func(t *testing.T) {
		f := newFixture(t)
		f.goals.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		f.goals.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter entity.GoalFilter) bool {
			return filter.Status != nil && *filter.Status == entity.GoalInProgress &&
				len(filter.Sort) == 1 && filter.Sort[0].Field == "target_date" &&
				assert.ObjectsAreEqual(&entity.PageWindow{Offset: 0, Limit: 20}, filter.Window)
		})).Return([]*entity.SavingGoal{inProgressGoal()}, nil).Once()

		page, err := f.useCase.List(context.Background(), usecase.ListGoalsInput{
			UserID: 1,
			Status: "in_progress",
			Sort:   []string{"target_date", "bogus"},
		})

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 20, page.PageSize)
	})

	t.Run("Huge page is empty without listing", func(t *testing.T) {
		f := newFixture(t)
		f.goals.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(3), nil).Once()

		page, err := f.useCase.List(context.Background(), usecase.ListGoalsInput{UserID: 1, Page: math.MaxInt})

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("Unknown status is invalid input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.List(context.Background(), usecase.ListGoalsInput{UserID: 1, Status: "paused"})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestProgress(t *testing.T) {
	f := newFixture(t)
	f.goals.EXPECT().GetByID(mock.Anything, uint64(1), uint64(5)).Return(inProgressGoal(), nil).Once()

	progress, err := f.useCase.Progress(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(900), progress.RestAmount)
	assert.Equal(t, 10.0, progress.PercentageProgress)
	assert.Equal(t, 30, progress.DaysLeft)
	assert.Equal(t, int64(30), progress.ExpectedDailyPayment)
}
