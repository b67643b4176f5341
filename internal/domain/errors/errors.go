// Package errors defines the typed error taxonomy used across activities and
// workflows, mirroring §7 of the specification: validation, auth, transient
// provider, provider-quota, not-found and programming errors.
package errors

import "fmt"

// ValidationError represents a non-retryable input or structural problem
// (malformed URL, unknown action type, missing required config).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error for field %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthError represents a disconnected or invalid provider account. Non-retryable.
type AuthError struct {
	AccountID string
	Message   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error for account %s: %s", e.AccountID, e.Message)
}

func NewAuthError(accountID, message string) *AuthError {
	return &AuthError{AccountID: accountID, Message: message}
}

// ProviderQuotaError is the distinguished "provider_limit_reached" return
// described in §4.1/§7. It is not counted against the normal retry budget;
// the caller sleeps RetryAfter and retries indefinitely.
type ProviderQuotaError struct {
	RetryAfterHours float64
	ShouldRetry     bool
	Message         string
}

func (e *ProviderQuotaError) Error() string {
	return fmt.Sprintf("provider quota reached: %s (retry after %.1fh)", e.Message, e.RetryAfterHours)
}

func NewProviderQuotaError(retryAfterHours float64, message string) *ProviderQuotaError {
	return &ProviderQuotaError{RetryAfterHours: retryAfterHours, ShouldRetry: true, Message: message}
}

// NotFoundError represents a missing lead/company/campaign row. Retryable in
// monitor activities (eventual consistency tolerance), fatal elsewhere — the
// caller decides based on context, per §7.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// ProgrammingError represents an exhaustiveness violation (unknown action
// type, impossible state transition). Non-retryable, surfaced to operators.
type ProgrammingError struct {
	Message string
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("programming error: %s", e.Message)
}

func NewProgrammingError(message string) *ProgrammingError {
	return &ProgrammingError{Message: message}
}

// IsRetryable reports whether err belongs to a class that should be retried
// by the caller's own loop (as opposed to Temporal's activity retry policy,
// which governs transient/network failures independently).
func IsRetryable(err error) bool {
	switch err.(type) {
	case *ValidationError, *AuthError, *ProgrammingError:
		return false
	case *NotFoundError:
		return true
	case *ProviderQuotaError:
		return true
	default:
		return true
	}
}
