package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount           = 4001
	CodeInvalidRange            = 4002
	CodeInvalidRequest          = 4003
	CodeInvalidGoalDates        = 4004
	CodeCategoryMissing         = 4005
	CodeMissingDisposition      = 4006
	CodeUnauthorized            = 4010
	CodeNotFound                = 4040
	CodeCategoryAlreadyExists   = 4090
	CodeDefaultCategoryReadOnly = 4091
	CodeUserAlreadyExists       = 4092
	CodeConstraintViolation     = 4093

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeChartUnavailable = 5030
)

// Base error types
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when a category is absent or owned by another user
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when a spending or income is absent or owned by another user
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrGoalNotFound is returned when a saving goal is absent or owned by another user
	ErrGoalNotFound = errors.New("saving goal not found")

	// ErrCategoryAlreadyExists is returned when the user already has a category with that name
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrDefaultCategoryReadOnly is returned on attempts to delete or rename the default category
	ErrDefaultCategoryReadOnly = errors.New("default category cannot be deleted or renamed")

	// ErrUserAlreadyExists is returned when the username or email is taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrCategoryMissing is returned when neither a category id nor a name was supplied
	ErrCategoryMissing = errors.New("category id or name is required")

	// ErrInvalidAmount is returned for non-positive amounts and goal payments that break the goal bounds
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRange is returned when the start of a range is after its end
	ErrInvalidRange = errors.New("range start is after range end")

	// ErrInvalidGoalDates is returned when a goal target date precedes its start date
	ErrInvalidGoalDates = errors.New("target date cannot be before start date")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingDisposition is returned when a category with transactions is deleted without a disposition
	ErrMissingDisposition = errors.New("category has transactions, a disposition is required")

	// ErrDispositionTargetNotFound is returned when the reassignment target category does not exist
	ErrDispositionTargetNotFound = errors.New("disposition target category not found")

	// ErrInvalidCredentials is returned when username or password do not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInactiveUser is returned when a disabled user tries to authenticate
	ErrInactiveUser = errors.New("user is inactive")

	// ErrUnauthorized is returned when the access token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrChartUnavailable is returned when the chart worker did not answer in time or failed
	ErrChartUnavailable = errors.New("chart service unavailable")

	// ErrEmptyChart is returned when a chart is requested for a series with no data
	ErrEmptyChart = errors.New("nothing to plot")

	// ErrExportUnavailable is returned when an export target is not configured
	ErrExportUnavailable = errors.New("export target is not configured")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRange):
		return CodeInvalidRange
	case errors.Is(err, ErrInvalidGoalDates):
		return CodeInvalidGoalDates
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrCategoryMissing):
		return CodeCategoryMissing
	case IsMissingDispositionError(err):
		return CodeMissingDisposition
	case IsUnauthorizedError(err):
		return CodeUnauthorized
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrCategoryAlreadyExists):
		return CodeCategoryAlreadyExists
	case errors.Is(err, ErrDefaultCategoryReadOnly):
		return CodeDefaultCategoryReadOnly
	case errors.Is(err, ErrUserAlreadyExists):
		return CodeUserAlreadyExists
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrChartUnavailable), errors.Is(err, ErrExportUnavailable):
		return CodeChartUnavailable
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the offending field of a rejected input
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, reason string, err error) error {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// GoalPaymentError describes a rejected goal payment
type GoalPaymentError struct {
	GoalID        uint64
	CurrentAmount int64
	TargetAmount  int64
	Payment       int64
}

// Error implements the error interface
func (e *GoalPaymentError) Error() string {
	return fmt.Sprintf("payment %d rejected for goal %d (current: %d, target: %d)",
		e.Payment, e.GoalID, e.CurrentAmount, e.TargetAmount)
}

// Is checks if the target error is an ErrInvalidAmount
func (e *GoalPaymentError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// LogFields returns a map of fields for structured logging
func (e *GoalPaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "goal_payment",
		"goal_id":        e.GoalID,
		"current_amount": e.CurrentAmount,
		"target_amount":  e.TargetAmount,
		"payment":        e.Payment,
		"error_code":     CodeInvalidAmount,
	}
}

// NewGoalPaymentError creates a detailed goal payment error
func NewGoalPaymentError(goalID uint64, current, target, payment int64) error {
	return &GoalPaymentError{
		GoalID:        goalID,
		CurrentAmount: current,
		TargetAmount:  target,
		Payment:       payment,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrGoalNotFound)
}

// IsConflictError checks if the error conflicts with existing state
func IsConflictError(err error) bool {
	return errors.Is(err, ErrCategoryAlreadyExists) ||
		errors.Is(err, ErrDefaultCategoryReadOnly) ||
		errors.Is(err, ErrUserAlreadyExists) ||
		errors.Is(err, ErrConstraintViolation)
}

// IsInvalidInputError checks if the error was caused by malformed input
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidGoalDates) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrCategoryMissing) ||
		errors.Is(err, ErrEmptyChart)
}

// IsMissingDispositionError checks if a category deletion lacked a usable disposition
func IsMissingDispositionError(err error) bool {
	return errors.Is(err, ErrMissingDisposition) ||
		errors.Is(err, ErrDispositionTargetNotFound)
}

// IsUnauthorizedError checks if the error is an authentication failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInactiveUser)
}
