package goal

import (
	"context"
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
)

// UseCase handles saving goals
type UseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	pages        query.PageDefaults
}

// NewUseCase creates a new goal UseCase
func NewUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	pages query.PageDefaults,
) *UseCase {
	return &UseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		pages:        pages,
	}
}

// Create validates and stores a goal; a goal created at its target is completed at once
func (u *UseCase) Create(ctx context.Context, params entity.NewGoalParams) (*entity.SavingGoal, error) {
	goal, err := entity.NewSavingGoal(params, u.timeProvider.Today())
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetGoalRepository(ctx).Create(ctx, goal); err != nil {
		u.logger.Error("Failed to create saving goal", map[string]any{
			"userId": params.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Saving goal created", map[string]any{
		"userId": goal.UserID,
		"goalId": goal.ID,
		"status": goal.Status,
	})
	return goal, nil
}

// Get returns the goal with its status evaluated for today; nothing is written
func (u *UseCase) Get(ctx context.Context, userID, id uint64) (*entity.SavingGoal, error) {
	goal, err := u.uow.GetGoalRepository(ctx).GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	u.refreshView(goal)
	return goal, nil
}

// List returns one page of the user's goals
func (u *UseCase) List(ctx context.Context, input usecase.ListGoalsInput) (entity.Page[*entity.SavingGoal], error) {
	filter := entity.GoalFilter{
		UserID: input.UserID,
		Today:  u.timeProvider.Today(),
		Search: strings.TrimSpace(input.Search),
		Sort:   query.ParseSortTokens(input.Sort, query.GoalSortFields),
	}
	if input.Status != "" {
		status, err := entity.ParseGoalStatus(input.Status)
		if err != nil {
			return entity.Page[*entity.SavingGoal]{}, err
		}
		filter.Status = &status
	}

	page, size := u.pages.Normalize(input.Page, input.PageSize)

	repo := u.uow.GetGoalRepository(ctx)
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return entity.Page[*entity.SavingGoal]{}, err
	}

	offset, ok := query.Window(page, size, total)
	if !ok {
		return query.NewPage[*entity.SavingGoal](nil, page, size, total), nil
	}
	filter.Window = &entity.PageWindow{Offset: offset, Limit: size}

	goals, err := repo.List(ctx, filter)
	if err != nil {
		return entity.Page[*entity.SavingGoal]{}, err
	}
	for _, goal := range goals {
		u.refreshView(goal)
	}
	return query.NewPage(goals, page, size, total), nil
}

// Update applies a partial update and persists the re-derived status
func (u *UseCase) Update(ctx context.Context, userID, id uint64, update entity.GoalUpdate) (*entity.SavingGoal, error) {
	return u.mutate(ctx, userID, id, "Saving goal updated", func(goal *entity.SavingGoal) error {
		return goal.Apply(update, u.timeProvider.Today())
	})
}

// ApplyPayment adds a possibly negative payment; out-of-bounds payments leave the goal untouched
func (u *UseCase) ApplyPayment(ctx context.Context, userID, id uint64, amount int64) (*entity.SavingGoal, error) {
	return u.mutate(ctx, userID, id, "Goal payment applied", func(goal *entity.SavingGoal) error {
		return goal.ApplyPayment(amount, u.timeProvider.Today())
	})
}

// Delete removes a goal of the user
func (u *UseCase) Delete(ctx context.Context, userID, id uint64) error {
	if err := u.uow.GetGoalRepository(ctx).Delete(ctx, userID, id); err != nil {
		return err
	}

	u.logger.Info("Saving goal deleted", map[string]any{
		"userId": userID,
		"goalId": id,
	})
	return nil
}

// Progress computes the progress view as of today
func (u *UseCase) Progress(ctx context.Context, userID, id uint64) (entity.GoalProgress, error) {
	goal, err := u.Get(ctx, userID, id)
	if err != nil {
		return entity.GoalProgress{}, err
	}
	return goal.Progress(u.timeProvider.Today()), nil
}

// mutate loads the goal, applies fn and writes it back inside one transaction
func (u *UseCase) mutate(
	ctx context.Context,
	userID, id uint64,
	message string,
	fn func(goal *entity.SavingGoal) error,
) (*entity.SavingGoal, error) {
	var goal *entity.SavingGoal

	err := persistence.RunInTransaction(ctx, u.uow, func(txCtx context.Context) error {
		repo := u.uow.GetGoalRepository(txCtx)

		loaded, err := repo.GetByID(txCtx, userID, id)
		if err != nil {
			return err
		}
		if err := fn(loaded); err != nil {
			return err
		}
		goal = loaded
		return repo.Update(txCtx, goal)
	})
	if err != nil {
		u.logger.Warn("Saving goal mutation rejected", map[string]any{
			"userId": userID,
			"goalId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info(message, map[string]any{
		"userId":        userID,
		"goalId":        id,
		"currentAmount": goal.CurrentAmount,
		"status":        goal.Status,
	})
	return goal, nil
}

// refreshView reports OVERDUE on read without persisting it
func (u *UseCase) refreshView(goal *entity.SavingGoal) {
	if goal.Status == entity.GoalInProgress && goal.IsOverdue(u.timeProvider.Today()) {
		goal.MarkOverdue(u.timeProvider.Today())
	}
}
