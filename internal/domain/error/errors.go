package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInvalidState       = 4002
	CodeAuthentication     = 4010
	CodeNotFound           = 4040
	CodeDuplicateReference = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5001
	CodeConfiguration  = 5002
	CodeProvider       = 5020
)

// Base error types
var (
	// ErrValidation is returned when required input is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication is returned when a signature or credential check fails
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	// or is not visible to the caller
	ErrTransactionNotFound = fmt.Errorf("transaction not found: %w", ErrNotFound)

	// ErrInvalidState is returned when an operation is not allowed in the current status
	ErrInvalidState = errors.New("invalid transaction state")

	// ErrProvider is returned when the payment provider cannot be reached or rejects a call
	ErrProvider = errors.New("payment provider error")

	// ErrPersistence is returned when the store fails
	ErrPersistence = errors.New("persistence error")

	// ErrDuplicateReference is returned when a merchant reference is already taken
	ErrDuplicateReference = fmt.Errorf("merchant reference already exists: %w", ErrPersistence)

	// ErrConfiguration is returned when a required setting, such as a signing key, is absent
	ErrConfiguration = errors.New("configuration error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrAuthentication):
		return CodeAuthentication
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrProvider):
		return CodeProvider
	default:
		return CodeInternalServer
	}
}

// ProviderErrorKind classifies why a provider call failed
type ProviderErrorKind string

const (
	// ProviderUnavailable covers refused connections and DNS failures
	ProviderUnavailable ProviderErrorKind = "unavailable"
	// ProviderTimeout covers calls that did not complete within the client timeout
	ProviderTimeout ProviderErrorKind = "timeout"
	// ProviderBadGateway covers non-2xx answers from the provider
	ProviderBadGateway ProviderErrorKind = "bad_gateway"
)

// ProviderError carries enough detail about a failed provider call to retry it by hand
type ProviderError struct {
	Kind       ProviderErrorKind
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface for ProviderError
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment provider %s (status %d): %s", e.Kind, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("payment provider %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("payment provider %s", e.Kind)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrProvider as the base error
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// Retryable reports whether the same call may succeed later without changes
func (e *ProviderError) Retryable() bool {
	return e.Kind == ProviderUnavailable || e.Kind == ProviderTimeout || e.StatusCode >= 500
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":  "provider_error",
		"kind":        string(e.Kind),
		"status_code": e.StatusCode,
		"body":        e.Body,
		"retryable":   e.Retryable(),
		"error_code":  CodeProvider,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewProviderError creates a provider error
func NewProviderError(kind ProviderErrorKind, statusCode int, body string, err error) error {
	return &ProviderError{
		Kind:       kind,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// InvalidTransitionError describes a status change the state machine refuses
type InvalidTransitionError struct {
	Reference string
	From      string
	To        string
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transaction %s cannot move from %s to %s", e.Reference, e.From, e.To)
}

// Is checks if the target error is an ErrInvalidState
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidState
}

// LogFields returns a map of fields for structured logging
func (e *InvalidTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":         "invalid_transition",
		"merchant_reference": e.Reference,
		"from":               e.From,
		"to":                 e.To,
		"error_code":         CodeInvalidState,
	}
}

// NewInvalidTransitionError creates a new detailed invalid transition error
func NewInvalidTransitionError(reference, from, to string) error {
	return &InvalidTransitionError{
		Reference: reference,
		From:      from,
		To:        to,
	}
}

// ValidationError names the offending field of a rejected input
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new field validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidStateError checks if the error is an illegal transition attempt
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsDuplicateReferenceError checks if the error is a merchant reference collision
func IsDuplicateReferenceError(err error) bool {
	return errors.Is(err, ErrDuplicateReference)
}

// AsProviderError extracts a ProviderError from the chain
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
