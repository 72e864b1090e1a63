package entity

import (
	"testing"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSavingGoal(t *testing.T) {
	today := date(2024, 6, 1)

	t.Run("Defaults start date to today", func(t *testing.T) {
		goal, err := NewSavingGoal(NewGoalParams{
			UserID:       1,
			Name:         "  Bike ",
			TargetAmount: 1000,
			TargetDate:   date(2024, 12, 31),
		}, today)

		require.NoError(t, err)
		assert.Equal(t, "Bike", goal.Name)
		assert.Equal(t, today, goal.StartDate)
		assert.Equal(t, GoalInProgress, goal.Status)
		assert.Nil(t, goal.EndDate)
	})

	t.Run("Current equal to target is completed immediately", func(t *testing.T) {
		goal, err := NewSavingGoal(NewGoalParams{
			Name:          "Phone",
			TargetAmount:  500,
			CurrentAmount: 500,
			TargetDate:    date(2024, 12, 31),
		}, today)

		require.NoError(t, err)
		assert.Equal(t, GoalCompleted, goal.Status)
		require.NotNil(t, goal.EndDate)
		assert.Equal(t, today, *goal.EndDate)
	})

	t.Run("Target date before start date is rejected", func(t *testing.T) {
		start := date(2024, 6, 10)
		_, err := NewSavingGoal(NewGoalParams{
			Name:         "Trip",
			TargetAmount: 500,
			StartDate:    &start,
			TargetDate:   date(2024, 6, 9),
		}, today)

		assert.ErrorIs(t, err, errs.ErrInvalidGoalDates)
	})

	t.Run("Invalid amounts are rejected", func(t *testing.T) {
		testCases := []NewGoalParams{
			{Name: "a", TargetAmount: 0, TargetDate: today},
			{Name: "a", TargetAmount: 100, CurrentAmount: -1, TargetDate: today},
			{Name: "a", TargetAmount: 100, CurrentAmount: 101, TargetDate: today},
		}
		for _, params := range testCases {
			_, err := NewSavingGoal(params, today)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("Empty name is rejected", func(t *testing.T) {
		_, err := NewSavingGoal(NewGoalParams{Name: " ", TargetAmount: 1, TargetDate: today}, today)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestSavingGoal_ApplyPayment(t *testing.T) {
	today := date(2024, 6, 1)
	newGoal := func() *SavingGoal {
		return &SavingGoal{
			ID:            3,
			TargetAmount:  1000,
			CurrentAmount: 100,
			StartDate:     date(2024, 1, 1),
			TargetDate:    date(2024, 12, 31),
			Status:        GoalInProgress,
		}
	}

	t.Run("Positive payment increases current amount", func(t *testing.T) {
		goal := newGoal()
		require.NoError(t, goal.ApplyPayment(400, today))
		assert.Equal(t, int64(500), goal.CurrentAmount)
		assert.Equal(t, GoalInProgress, goal.Status)
	})

	t.Run("Payment below zero is rejected without mutation", func(t *testing.T) {
		goal := newGoal()
		before := *goal

		err := goal.ApplyPayment(-150, today)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, before, *goal)
	})

	t.Run("Payment above target is rejected without mutation", func(t *testing.T) {
		goal := newGoal()
		before := *goal

		err := goal.ApplyPayment(901, today)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, before, *goal)
	})

	t.Run("Reaching the target completes the goal", func(t *testing.T) {
		goal := newGoal()
		require.NoError(t, goal.ApplyPayment(900, today))
		assert.Equal(t, GoalCompleted, goal.Status)
		require.NotNil(t, goal.EndDate)
		assert.Equal(t, today, *goal.EndDate)
	})

	t.Run("Withdrawing from a completed goal reopens it", func(t *testing.T) {
		goal := newGoal()
		require.NoError(t, goal.ApplyPayment(900, today))
		require.NoError(t, goal.ApplyPayment(-100, today))
		assert.Equal(t, GoalInProgress, goal.Status)
		assert.Nil(t, goal.EndDate)
	})

	t.Run("Payment after the target date marks the goal overdue", func(t *testing.T) {
		goal := newGoal()
		later := date(2025, 1, 2)
		require.NoError(t, goal.ApplyPayment(10, later))
		assert.Equal(t, GoalOverdue, goal.Status)
		require.NotNil(t, goal.EndDate)
		assert.Equal(t, later, *goal.EndDate)
	})
}

func TestSavingGoal_Overdue(t *testing.T) {
	goal := &SavingGoal{
		TargetAmount:  1000,
		CurrentAmount: 10,
		StartDate:     date(2024, 1, 1),
		TargetDate:    date(2024, 3, 1),
		Status:        GoalInProgress,
	}
	today := date(2024, 3, 2)

	assert.False(t, goal.IsOverdue(date(2024, 3, 1)))
	assert.True(t, goal.IsOverdue(today))

	goal.MarkOverdue(today)
	assert.Equal(t, GoalOverdue, goal.Status)
	require.NotNil(t, goal.EndDate)

	completed := &SavingGoal{TargetAmount: 1, CurrentAmount: 1, TargetDate: date(2024, 3, 1), Status: GoalCompleted}
	assert.False(t, completed.IsOverdue(today))
}

func TestSavingGoal_RefreshStatus(t *testing.T) {
	goal := &SavingGoal{TargetAmount: 100, CurrentAmount: 0, TargetDate: date(2024, 3, 1), Status: GoalInProgress}

	assert.False(t, goal.RefreshStatus(date(2024, 2, 1)))
	assert.True(t, goal.RefreshStatus(date(2024, 3, 5)))
	assert.Equal(t, GoalOverdue, goal.Status)
	assert.False(t, goal.RefreshStatus(date(2024, 3, 6)))
	assert.Equal(t, date(2024, 3, 5), *goal.EndDate)
}

func TestSavingGoal_Apply(t *testing.T) {
	today := date(2024, 6, 1)
	goal := &SavingGoal{
		Name:          "Car",
		TargetAmount:  1000,
		CurrentAmount: 600,
		StartDate:     date(2024, 1, 1),
		TargetDate:    date(2024, 12, 31),
		Status:        GoalInProgress,
	}

	t.Run("Lowering the target below current is rejected", func(t *testing.T) {
		target := int64(500)
		err := goal.Apply(GoalUpdate{TargetAmount: &target}, today)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, int64(1000), goal.TargetAmount)
	})

	t.Run("Lowering the target to current completes the goal", func(t *testing.T) {
		target := int64(600)
		name := "New car"
		require.NoError(t, goal.Apply(GoalUpdate{TargetAmount: &target, Name: &name}, today))
		assert.Equal(t, "New car", goal.Name)
		assert.Equal(t, GoalCompleted, goal.Status)
	})

	t.Run("Moving the target date before the start is rejected", func(t *testing.T) {
		target := date(2023, 12, 1)
		err := goal.Apply(GoalUpdate{TargetDate: &target}, today)
		assert.ErrorIs(t, err, errs.ErrInvalidGoalDates)
	})
}
