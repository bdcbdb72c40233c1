package authflow

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 25
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// validatorInstance is shared; validator caches struct metadata per type.
var validatorInstance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("passwordshape", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
	return v
}

// IsValidEmail reports whether the whole of e has the shape local@domain.tld.
func IsValidEmail(e string) bool {
	return emailPattern.MatchString(e)
}

// IsValidPassword reports whether p is 6 to 25 characters long and contains
// no whitespace.
func IsValidPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < minPasswordLen || n > maxPasswordLen {
		return false
	}
	for _, r := range p {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// LoginForm holds the values submitted from the login screen.
type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,emailshape"`
	Password string `form:"password" json:"password" validate:"required,passwordshape"`
}

// Validate checks the form and returns the first failure in screen order:
// missing fields, then email format, then password strength.
func (f LoginForm) Validate() error {
	return firstFailure(validatorInstance.Struct(f),
		KindMissingFields, KindInvalidEmailFormat, KindWeakPassword)
}

// RegistrationForm holds the values submitted from the registration screen.
type RegistrationForm struct {
	Name            string `form:"name" json:"name" validate:"required"`
	Surname         string `form:"surname" json:"surname" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required,emailshape"`
	Password        string `form:"password" json:"password" validate:"required,passwordshape"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" validate:"required,eqfield=Password"`
}

// Validate checks the form and returns the first failure in screen order:
// missing fields, password mismatch, email format, password strength.
func (f RegistrationForm) Validate() error {
	return firstFailure(validatorInstance.Struct(f),
		KindMissingFields, KindPasswordMismatch, KindInvalidEmailFormat, KindWeakPassword)
}

// DisplayName joins name and surname.
func (f RegistrationForm) DisplayName() string {
	return f.Name + " " + f.Surname
}

var tagKinds = map[string]Kind{
	"required":      KindMissingFields,
	"emailshape":    KindInvalidEmailFormat,
	"passwordshape": KindWeakPassword,
	"eqfield":       KindPasswordMismatch,
}

// firstFailure turns validator errors into the highest-priority Failure.
func firstFailure(err error, order ...Kind) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	seen := make(map[Kind]bool, len(verrs))
	for _, fe := range verrs {
		if kind, ok := tagKinds[fe.Tag()]; ok {
			seen[kind] = true
		}
	}
	for _, kind := range order {
		if seen[kind] {
			return &Failure{Kind: kind}
		}
	}
	return &Failure{Kind: KindUnknownProviderError, Raw: err.Error()}
}
