package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		current  int64
		target   int64
		expected float64
	}{
		{"Zero current", 0, 500, 0},
		{"Zero target", 100, 0, 0},
		{"Complete", 500, 500, 100},
		{"Half", 250, 500, 50},
		{"Rounded to two decimals", 1, 3, 33.33},
		{"Rounded up", 2, 3, 66.67},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Percentage(tc.current, tc.target))
		})
	}

	t.Run("Stays within bounds while current is below target", func(t *testing.T) {
		for current := int64(0); current <= 97; current++ {
			pct := Percentage(current, 97)
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
		}
	})
}

func TestDaysBetween(t *testing.T) {
	a := date(2024, 2, 27)
	b := date(2024, 3, 2)

	assert.Equal(t, 4, DaysBetween(a, b))
	assert.Equal(t, DaysBetween(a, b), DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a.Add(23*time.Hour)))
	assert.Equal(t, 366, DaysBetween(date(2024, 1, 1), date(2025, 1, 1)))

	t.Run("Spans longer than a Duration can hold", func(t *testing.T) {
		far := date(2500, 1, 1)
		assert.Equal(t, 173125, DaysBetween(date(2026, 1, 1), far))
		assert.Equal(t, 173125, DaysBetween(far, date(2026, 1, 1)))
	})
}

func TestExpectedDailyPayment(t *testing.T) {
	assert.Equal(t, int64(0), ExpectedDailyPayment(0, 0))
	assert.Equal(t, int64(0), ExpectedDailyPayment(0, 30))
	assert.Equal(t, int64(700), ExpectedDailyPayment(700, 0))
	assert.Equal(t, ExpectedDailyPayment(700, 1), ExpectedDailyPayment(700, 0))
	assert.Equal(t, int64(700), ExpectedDailyPayment(700, -3))
	assert.Equal(t, int64(34), ExpectedDailyPayment(100, 3))
	assert.Equal(t, int64(10), ExpectedDailyPayment(100, 10))
}

func TestSavingGoal_Progress(t *testing.T) {
	today := date(2024, 6, 1)

	t.Run("Goal in progress", func(t *testing.T) {
		goal := &SavingGoal{TargetAmount: 1000, CurrentAmount: 250, TargetDate: date(2024, 6, 11), Status: GoalInProgress}

		progress := goal.Progress(today)

		assert.Equal(t, int64(750), progress.RestAmount)
		assert.Equal(t, 25.0, progress.PercentageProgress)
		assert.Equal(t, 10, progress.DaysLeft)
		assert.Equal(t, int64(75), progress.ExpectedDailyPayment)
	})

	t.Run("Past target date has no days left", func(t *testing.T) {
		goal := &SavingGoal{TargetAmount: 1000, CurrentAmount: 400, TargetDate: date(2024, 5, 1), Status: GoalInProgress}

		progress := goal.Progress(today)

		assert.Equal(t, 0, progress.DaysLeft)
		assert.Equal(t, int64(600), progress.ExpectedDailyPayment)
	})

	t.Run("Completed goal owes nothing", func(t *testing.T) {
		goal := &SavingGoal{TargetAmount: 1000, CurrentAmount: 1000, TargetDate: date(2024, 7, 1), Status: GoalCompleted}

		progress := goal.Progress(today)

		assert.Equal(t, int64(0), progress.RestAmount)
		assert.Equal(t, 100.0, progress.PercentageProgress)
		assert.Equal(t, int64(0), progress.ExpectedDailyPayment)
	})
}
