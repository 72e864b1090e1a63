package entity

import (
	"time"

	"github.com/shopspring/decimal"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

var hundred = decimal.NewFromInt(100)

const secondsPerDay = 24 * 60 * 60

// Percentage returns current/target*100 rounded to two decimals, 0 when either side is 0
func Percentage(current, target int64) float64 {
	if target == 0 || current == 0 {
		return 0
	}
	pct, _ := decimal.NewFromInt(current).
		Mul(hundred).
		Div(decimal.NewFromInt(target)).
		Round(2).
		Float64()
	return pct
}

// DaysBetween returns the absolute number of calendar days between two dates
func DaysBetween(d1, d2 time.Time) int {
	a := coreport.TruncateToDate(d1)
	b := coreport.TruncateToDate(d2)
	// Unix seconds, since time.Duration saturates after about 292 years
	days := int((b.Unix() - a.Unix()) / secondsPerDay)
	if days < 0 {
		return -days
	}
	return days
}

// ExpectedDailyPayment spreads the remaining amount over the days left, rounding up
func ExpectedDailyPayment(rest int64, daysLeft int) int64 {
	if rest <= 0 {
		return 0
	}
	if daysLeft < 1 {
		daysLeft = 1
	}
	days := int64(daysLeft)
	return (rest + days - 1) / days
}

// GoalProgress is the computed view of a goal at a given day
type GoalProgress struct {
	CurrentAmount        int64
	TargetAmount         int64
	RestAmount           int64
	PercentageProgress   float64
	DaysLeft             int
	ExpectedDailyPayment int64
}

// Progress computes the goal progress as seen on today
func (g *SavingGoal) Progress(today time.Time) GoalProgress {
	rest := g.TargetAmount - g.CurrentAmount
	if rest < 0 {
		rest = 0
	}

	daysLeft := 0
	if !coreport.TruncateToDate(g.TargetDate).Before(coreport.TruncateToDate(today)) {
		daysLeft = DaysBetween(today, g.TargetDate)
	}

	return GoalProgress{
		CurrentAmount:        g.CurrentAmount,
		TargetAmount:         g.TargetAmount,
		RestAmount:           rest,
		PercentageProgress:   Percentage(g.CurrentAmount, g.TargetAmount),
		DaysLeft:             daysLeft,
		ExpectedDailyPayment: ExpectedDailyPayment(rest, daysLeft),
	}
}
