package persistence

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// GoalRepository stores saving goals
type GoalRepository interface {
	// Create stores a new goal and sets its ID
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// GetByID retrieves a goal owned by the user
	//
	// Possible errors:
	// - ErrGoalNotFound: If the goal is absent or owned by another user
	GetByID(ctx context.Context, userID, id uint64) (*entity.SavingGoal, error)

	// List returns the goals matching the filter; without sort options rows are in id order
	List(ctx context.Context, filter entity.GoalFilter) ([]*entity.SavingGoal, error)

	// Count returns how many goals match the filter; the window is ignored
	Count(ctx context.Context, filter entity.GoalFilter) (int64, error)

	// Update persists every mutable field including status and end date
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// Delete removes a goal owned by the user
	Delete(ctx context.Context, userID, id uint64) error
}
