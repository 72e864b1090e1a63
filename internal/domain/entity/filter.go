package entity

import (
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

// SortOption is one parsed sort token
type SortOption struct {
	Field      string
	Descending bool
}

// AmountRange bounds amounts inclusively; nil ends are open
type AmountRange struct {
	Min *int64
	Max *int64
}

// NewAmountRange rejects a minimum above the maximum
func NewAmountRange(min, max *int64) (*AmountRange, error) {
	if min == nil && max == nil {
		return nil, nil
	}
	if min != nil && max != nil && *min > *max {
		return nil, errs.NewValidationError("amount", "min_amount is greater than max_amount", errs.ErrInvalidRange)
	}
	return &AmountRange{Min: min, Max: max}, nil
}

// Contains reports whether amount falls within the range
func (r *AmountRange) Contains(amount int64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && amount < *r.Min {
		return false
	}
	return r.Max == nil || amount <= *r.Max
}

// DateRange bounds instants inclusively; nil ends are open
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// NewDateRange rejects a start after the end
func NewDateRange(from, to *time.Time) (*DateRange, error) {
	if from == nil && to == nil {
		return nil, nil
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, errs.NewValidationError("datetime", "datetime_from is after datetime_to", errs.ErrInvalidRange)
	}
	r := &DateRange{}
	if from != nil {
		f := from.UTC()
		r.From = &f
	}
	if to != nil {
		t := to.UTC()
		r.To = &t
	}
	return r, nil
}

// PageWindow restricts a listing to Limit rows after skipping Offset
type PageWindow struct {
	Offset int
	Limit  int
}

// TransactionFilter is the normalized predicate set of a list or summary query
type TransactionFilter struct {
	UserID      uint64
	Kind        TransactionKind
	CategoryIDs []uint64
	Amount      *AmountRange
	Dates       *DateRange
	Search      string
	Sort        []SortOption
	Window      *PageWindow // nil lists every match
}

// GoalFilter narrows a goal listing
// Status matches the status as of Today, so stored IN_PROGRESS goals past their target date count as OVERDUE
type GoalFilter struct {
	UserID uint64
	Status *GoalStatus
	Today  time.Time
	Search string
	Sort   []SortOption
	Window *PageWindow
}
