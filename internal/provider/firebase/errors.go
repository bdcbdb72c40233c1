package firebase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sosyaltarif/tarifauth/internal/domain"
)

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorCodes maps Identity Toolkit error strings to provider codes.
var errorCodes = map[string]domain.ProviderErrorCode{
	"INVALID_EMAIL":               domain.CodeInvalidEmail,
	"MISSING_EMAIL":               domain.CodeInvalidEmail,
	"EMAIL_NOT_FOUND":             domain.CodeUserNotFound,
	"USER_NOT_FOUND":              domain.CodeUserNotFound,
	"INVALID_PASSWORD":            domain.CodeWrongPassword,
	"MISSING_PASSWORD":            domain.CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   domain.CodeInvalidCredential,
	"EMAIL_EXISTS":                domain.CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":               domain.CodeWeakPassword,
	"USER_DISABLED":               domain.CodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": domain.CodeTooManyRequests,
	"OPERATION_NOT_ALLOWED":       domain.CodeOperationForbidden,
}

// decodeError turns an error reply into a *domain.ProviderError. Firebase
// messages look like "WEAK_PASSWORD : Password should be at least 6 characters".
func decodeError(status int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error.Message == "" {
		return &domain.ProviderError{
			Code:    domain.CodeInternalError,
			Message: fmt.Sprintf("auth provider returned status %d", status),
		}
	}

	reason, _, _ := strings.Cut(er.Error.Message, " ")
	if code, ok := errorCodes[reason]; ok {
		return &domain.ProviderError{Code: code, Message: er.Error.Message}
	}
	if status == http.StatusTooManyRequests {
		return &domain.ProviderError{Code: domain.CodeTooManyRequests, Message: er.Error.Message}
	}
	return &domain.ProviderError{Code: domain.ProviderErrorCode(strings.ToLower(reason)), Message: er.Error.Message}
}
