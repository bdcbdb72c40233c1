package domain

import (
	"errors"
	"fmt"
)

// ProviderErrorCode is the provider-defined reason for a failed call.
type ProviderErrorCode string

// Known provider error codes. Anything else falls into the open bucket and is
// reported with the provider's raw message.
const (
	CodeInvalidEmail       ProviderErrorCode = "invalid-email"
	CodeUserNotFound       ProviderErrorCode = "user-not-found"
	CodeWrongPassword      ProviderErrorCode = "wrong-password"
	CodeInvalidCredential  ProviderErrorCode = "invalid-credential"
	CodeNetworkError       ProviderErrorCode = "network-error"
	CodeEmailAlreadyInUse  ProviderErrorCode = "email-already-in-use"
	CodeWeakPassword       ProviderErrorCode = "weak-password"
	CodeTooManyRequests    ProviderErrorCode = "too-many-requests"
	CodeUserDisabled       ProviderErrorCode = "user-disabled"
	CodeInternalError      ProviderErrorCode = "internal-error"
	CodeOperationForbidden ProviderErrorCode = "operation-not-allowed"
)

// ProviderError is an error code/message pair returned by the AuthProvider.
type ProviderError struct {
	Code    ProviderErrorCode
	Message string
	// Err is the underlying cause, if any (e.g. a transport error).
	Err error
}

// NewProviderError creates a ProviderError with the given code and message.
func NewProviderError(code ProviderErrorCode, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth provider: %s", e.Code)
	}
	return fmt.Sprintf("auth provider: %s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts a *ProviderError from err's chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Sentinel errors for the domain layer.
var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
)
