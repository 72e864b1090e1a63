package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	TimeoutError      ErrorType = "timeout"
)

// ErrorClassifier provides methods to classify postgres and sqlite errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsForeignKeyError checks if the error is a foreign key violation
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint") ||
		strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

// IsTimeoutError checks if the query was cancelled or ran out of time
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		strings.Contains(err.Error(), "timeout")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "dial")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		c.IsDuplicateKeyError(err) ||
		c.IsForeignKeyError(err)
}

// handleDatabaseError standardizes database error handling for every repository
// notFound and duplicate are the domain errors of the calling repository
func handleDatabaseError(
	logger coreport.Logger,
	classifier *ErrorClassifier,
	operation string,
	err error,
	notFound error,
	duplicate error,
	fields map[string]any,
) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	switch classifier.Classify(err) {
	case DuplicateKeyError:
		logger.Warn("Duplicate key", logFields)
		return duplicate
	case ForeignKeyError, ConstraintError:
		logger.Warn("Constraint violation", logFields)
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)
	case TimeoutError, ConnectionError:
		logger.Error(fmt.Sprintf("Database unavailable when %s", operation), logFields)
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}
