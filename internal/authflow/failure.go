package authflow

import (
	"context"
	"errors"

	"github.com/sosyaltarif/tarifauth/internal/domain"
)

// Kind classifies why a submission failed.
type Kind int

// Failure kinds. Local kinds come from form validation, provider kinds from
// the AuthProvider's error code.
const (
	KindMissingFields Kind = iota + 1
	KindInvalidEmailFormat
	KindWeakPassword
	KindPasswordMismatch

	KindInvalidEmail
	KindUserNotFound
	KindWrongPasswordOrInvalidCredential
	KindNetworkError
	KindEmailAlreadyInUse
	KindTooManyAttempts
	KindUserDisabled
	KindUnknownProviderError

	KindSubmissionInProgress
)

var kindNames = map[Kind]string{
	KindMissingFields:                    "missing_fields",
	KindInvalidEmailFormat:               "invalid_email_format",
	KindWeakPassword:                     "weak_password",
	KindPasswordMismatch:                 "password_mismatch",
	KindInvalidEmail:                     "invalid_email",
	KindUserNotFound:                     "user_not_found",
	KindWrongPasswordOrInvalidCredential: "wrong_password_or_invalid_credential",
	KindNetworkError:                     "network_error",
	KindEmailAlreadyInUse:                "email_already_in_use",
	KindTooManyAttempts:                  "too_many_attempts",
	KindUserDisabled:                     "user_disabled",
	KindUnknownProviderError:             "unknown_provider_error",
	KindSubmissionInProgress:             "submission_in_progress",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Local reports whether the failure was detected before calling the provider.
func (k Kind) Local() bool {
	return k >= KindMissingFields && k <= KindPasswordMismatch
}

// Failure is the error returned by a flow submission. Raw carries the
// provider's own description for KindUnknownProviderError.
type Failure struct {
	Kind Kind
	Raw  string
}

func (f *Failure) Error() string {
	if f.Raw != "" {
		return "authflow: " + f.Kind.String() + ": " + f.Raw
	}
	return "authflow: " + f.Kind.String()
}

// Is matches any *Failure of the same kind, so the sentinels below work with
// errors.Is.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Kind == f.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrMissingFields        = &Failure{Kind: KindMissingFields}
	ErrInvalidEmailFormat   = &Failure{Kind: KindInvalidEmailFormat}
	ErrWeakPassword         = &Failure{Kind: KindWeakPassword}
	ErrPasswordMismatch     = &Failure{Kind: KindPasswordMismatch}
	ErrInvalidEmail         = &Failure{Kind: KindInvalidEmail}
	ErrUserNotFound         = &Failure{Kind: KindUserNotFound}
	ErrWrongPassword        = &Failure{Kind: KindWrongPasswordOrInvalidCredential}
	ErrNetwork              = &Failure{Kind: KindNetworkError}
	ErrEmailAlreadyInUse    = &Failure{Kind: KindEmailAlreadyInUse}
	ErrTooManyAttempts      = &Failure{Kind: KindTooManyAttempts}
	ErrUserDisabled         = &Failure{Kind: KindUserDisabled}
	ErrUnknownProvider      = &Failure{Kind: KindUnknownProviderError}
	ErrSubmissionInProgress = &Failure{Kind: KindSubmissionInProgress}
)

// ErrScreenClosed is returned when the screen went away before the provider
// answered. No presenter calls are made after it.
var ErrScreenClosed = errors.New("screen closed before the request settled")

var codeKinds = map[domain.ProviderErrorCode]Kind{
	domain.CodeInvalidEmail:      KindInvalidEmail,
	domain.CodeUserNotFound:      KindUserNotFound,
	domain.CodeWrongPassword:     KindWrongPasswordOrInvalidCredential,
	domain.CodeInvalidCredential: KindWrongPasswordOrInvalidCredential,
	domain.CodeNetworkError:      KindNetworkError,
	domain.CodeEmailAlreadyInUse: KindEmailAlreadyInUse,
	domain.CodeWeakPassword:      KindWeakPassword,
	domain.CodeTooManyRequests:   KindTooManyAttempts,
	domain.CodeUserDisabled:      KindUserDisabled,
}

// Classify maps any error from a submission onto the failure taxonomy. Both
// flows use it, so a provider code means the same thing on either screen.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	if pe, ok := domain.AsProviderError(err); ok {
		if kind, ok := codeKinds[pe.Code]; ok {
			return &Failure{Kind: kind}
		}
		raw := pe.Message
		if raw == "" {
			raw = string(pe.Code)
		}
		return &Failure{Kind: KindUnknownProviderError, Raw: raw}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Failure{Kind: KindNetworkError}
	}
	return &Failure{Kind: KindUnknownProviderError, Raw: err.Error()}
}
