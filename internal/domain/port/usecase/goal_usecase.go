package usecase

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// ListGoalsInput is a filtered, sorted and paginated goal listing
type ListGoalsInput struct {
	UserID   uint64
	Status   string
	Search   string
	Sort     []string
	Page     int
	PageSize int
}

// GoalUseCase defines saving goal operations
// Reads report OVERDUE as soon as the target date passed; the status is persisted on the next mutation
type GoalUseCase interface {
	Create(ctx context.Context, params entity.NewGoalParams) (*entity.SavingGoal, error)
	Get(ctx context.Context, userID, id uint64) (*entity.SavingGoal, error)
	List(ctx context.Context, input ListGoalsInput) (entity.Page[*entity.SavingGoal], error)
	Update(ctx context.Context, userID, id uint64, update entity.GoalUpdate) (*entity.SavingGoal, error)
	Delete(ctx context.Context, userID, id uint64) error

	// ApplyPayment adds a possibly negative payment to the goal
	ApplyPayment(ctx context.Context, userID, id uint64, amount int64) (*entity.SavingGoal, error)

	// Progress computes the progress view of the goal as of today
	Progress(ctx context.Context, userID, id uint64) (entity.GoalProgress, error)
}
