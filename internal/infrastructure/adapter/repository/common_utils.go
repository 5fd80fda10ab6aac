package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	NotFoundError     ErrorType = "not_found"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// ErrorClassifier provides methods to classify database errors
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
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error. Drivers
// opened with TranslateError report gorm.ErrDuplicatedKey; the message checks
// cover the rest.
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
		strings.Contains(msg, "Duplicate entry")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "serialization failure")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		c.IsTransientError(err)
}

// ToDomain maps a database error onto the domain sentinels. notFound is the
// entity-specific error for a missing row.
func (c *ErrorClassifier) ToDomain(err error, notFound error, operation string) error {
	switch c.Classify(err) {
	case "":
		if err == nil {
			return nil
		}
		return fmt.Errorf("%w: %s: %v", errs.ErrPersistence, operation, err)
	case NotFoundError:
		return notFound
	case DuplicateKeyError:
		return errs.ErrDuplicateReference
	default:
		return fmt.Errorf("%w: %s (%s): %v", errs.ErrPersistence, operation, c.Classify(err), err)
	}
}
