package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
)

const maxGoalNameLength = 100

// GoalStatus is the lifecycle state of a saving goal
type GoalStatus string

// Goal statuses
const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalOverdue    GoalStatus = "OVERDUE"
)

// ParseGoalStatus validates a status name
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch GoalStatus(strings.ToUpper(s)) {
	case GoalInProgress, GoalCompleted, GoalOverdue:
		return GoalStatus(strings.ToUpper(s)), nil
	default:
		return "", errs.NewValidationError("status", "unknown goal status", errs.ErrInvalidRequest)
	}
}

// SavingGoal tracks progress towards a target amount before a target date
// Dates carry no clock part and are in UTC
type SavingGoal struct {
	ID            uint64
	UserID        uint64
	Name          string
	Description   *string
	TargetAmount  int64
	CurrentAmount int64
	StartDate     time.Time
	TargetDate    time.Time
	EndDate       *time.Time
	Status        GoalStatus
}

// NewGoalParams is the input of NewSavingGoal; a nil StartDate means today
type NewGoalParams struct {
	UserID        uint64
	Name          string
	Description   *string
	TargetAmount  int64
	CurrentAmount int64
	StartDate     *time.Time
	TargetDate    time.Time
}

// NewSavingGoal validates the parameters and builds a goal with its initial status
func NewSavingGoal(params NewGoalParams, today time.Time) (*SavingGoal, error) {
	name, err := normalizeGoalName(params.Name)
	if err != nil {
		return nil, err
	}

	if params.TargetAmount <= 0 {
		return nil, errs.NewValidationError("target_amount", "must be positive", errs.ErrInvalidAmount)
	}
	if params.CurrentAmount < 0 || params.CurrentAmount > params.TargetAmount {
		return nil, errs.NewValidationError("current_amount", "must be between 0 and target_amount", errs.ErrInvalidAmount)
	}

	desc, err := normalizeDescription(params.Description)
	if err != nil {
		return nil, err
	}

	start := coreport.TruncateToDate(today)
	if params.StartDate != nil {
		start = coreport.TruncateToDate(*params.StartDate)
	}
	target := coreport.TruncateToDate(params.TargetDate)
	if err := ValidateGoalDates(start, target); err != nil {
		return nil, err
	}

	goal := &SavingGoal{
		UserID:        params.UserID,
		Name:          name,
		Description:   desc,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: params.CurrentAmount,
		StartDate:     start,
		TargetDate:    target,
		Status:        GoalInProgress,
	}
	goal.RefreshStatus(today)
	return goal, nil
}

// ValidateGoalDates rejects a target date before the start date
func ValidateGoalDates(start, target time.Time) error {
	if coreport.TruncateToDate(target).Before(coreport.TruncateToDate(start)) {
		return errs.NewValidationError("target_date", "is before start_date", errs.ErrInvalidGoalDates)
	}
	return nil
}

// IsOverdue reports whether the target date passed while the goal is not completed
func (g *SavingGoal) IsOverdue(today time.Time) bool {
	return g.Status != GoalCompleted &&
		coreport.TruncateToDate(g.TargetDate).Before(coreport.TruncateToDate(today))
}

// MarkOverdue forces the OVERDUE status and stamps the end date
func (g *SavingGoal) MarkOverdue(today time.Time) {
	g.setTerminal(GoalOverdue, today)
}

// RefreshStatus re-derives the status from the amounts and the target date
// Returns true when the status or end date changed
func (g *SavingGoal) RefreshStatus(today time.Time) bool {
	prevStatus, prevEnd := g.Status, g.EndDate

	switch {
	case g.CurrentAmount >= g.TargetAmount:
		g.setTerminal(GoalCompleted, today)
	case coreport.TruncateToDate(g.TargetDate).Before(coreport.TruncateToDate(today)):
		g.setTerminal(GoalOverdue, today)
	default:
		g.Status = GoalInProgress
		g.EndDate = nil
	}

	return prevStatus != g.Status || (prevEnd == nil) != (g.EndDate == nil)
}

// ApplyPayment adds a possibly negative payment; out-of-bounds results leave the goal untouched
func (g *SavingGoal) ApplyPayment(amount int64, today time.Time) error {
	next := g.CurrentAmount + amount
	if next < 0 || next > g.TargetAmount {
		return errs.NewGoalPaymentError(g.ID, g.CurrentAmount, g.TargetAmount, amount)
	}

	g.CurrentAmount = next
	g.RefreshStatus(today)
	return nil
}

// GoalUpdate holds the optional fields of a partial goal update
type GoalUpdate struct {
	Name          *string
	Description   *string
	TargetAmount  *int64
	CurrentAmount *int64
	StartDate     *time.Time
	TargetDate    *time.Time
}

// Apply validates the update against the resulting goal and mutates it
func (g *SavingGoal) Apply(update GoalUpdate, today time.Time) error {
	next := *g

	if update.Name != nil {
		name, err := normalizeGoalName(*update.Name)
		if err != nil {
			return err
		}
		next.Name = name
	}
	if update.Description != nil {
		desc, err := normalizeDescription(update.Description)
		if err != nil {
			return err
		}
		next.Description = desc
	}
	if update.TargetAmount != nil {
		if *update.TargetAmount <= 0 {
			return errs.NewValidationError("target_amount", "must be positive", errs.ErrInvalidAmount)
		}
		next.TargetAmount = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		next.CurrentAmount = *update.CurrentAmount
	}
	if next.CurrentAmount < 0 || next.CurrentAmount > next.TargetAmount {
		return errs.NewValidationError("current_amount", "must be between 0 and target_amount", errs.ErrInvalidAmount)
	}
	if update.StartDate != nil {
		next.StartDate = coreport.TruncateToDate(*update.StartDate)
	}
	if update.TargetDate != nil {
		next.TargetDate = coreport.TruncateToDate(*update.TargetDate)
	}
	if err := ValidateGoalDates(next.StartDate, next.TargetDate); err != nil {
		return err
	}

	*g = next
	g.RefreshStatus(today)
	return nil
}

// setTerminal moves to a finished status, stamping end_date when the status changes
func (g *SavingGoal) setTerminal(status GoalStatus, today time.Time) {
	if g.Status == status && g.EndDate != nil {
		return
	}
	g.Status = status
	end := coreport.TruncateToDate(today)
	g.EndDate = &end
}

func normalizeGoalName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError("name", "must not be empty", errs.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(name) > maxGoalNameLength {
		return "", errs.NewValidationError("name", "must be at most 100 characters", errs.ErrInvalidRequest)
	}
	return name, nil
}
