// Package i18n holds the user-facing strings of the login and registration
// screens and picks the language to show them in.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable message.
type Key string

// Message keys. Titles and bodies are separate keys so a front-end can render
// them independently.
const (
	TitleError           Key = "title.error"
	TitleMissingFields   Key = "title.missing_fields"
	TitleInvalidInput    Key = "title.invalid_input"
	TitleRegisterError   Key = "title.register_error"
	TitleLoginSucceeded  Key = "title.login_succeeded"
	TitleRegisterSuccess Key = "title.register_succeeded"

	LoginMissingFields    Key = "login.missing_fields"
	RegisterMissingFields Key = "register.missing_fields"
	InvalidEmailFormat    Key = "invalid_email_format"
	WeakPassword          Key = "weak_password"
	PasswordMismatch      Key = "password_mismatch"

	InvalidEmail      Key = "provider.invalid_email"
	UserNotFound      Key = "provider.user_not_found"
	WrongPassword     Key = "provider.wrong_password"
	NetworkError      Key = "provider.network_error"
	EmailAlreadyInUse Key = "provider.email_in_use"
	TooManyAttempts   Key = "provider.too_many_attempts"
	UserDisabled      Key = "provider.user_disabled"
	UnknownError      Key = "provider.unknown"

	SubmissionInProgress Key = "submission_in_progress"
	Welcome              Key = "login.welcome"
	Registered           Key = "register.done"

	Acknowledge Key = "action.ok"
	Loading     Key = "status.loading"
)

// Page labels for the web and terminal front-ends.
const (
	PageLogin    Key = "page.login"
	PageRegister Key = "page.register"
	PageHome     Key = "page.home"

	FieldName            Key = "field.name"
	FieldSurname         Key = "field.surname"
	FieldEmail           Key = "field.email"
	FieldPassword        Key = "field.password"
	FieldPasswordConfirm Key = "field.password_confirm"

	ActionLogin      Key = "action.login"
	ActionRegister   Key = "action.register"
	ActionToRegister Key = "action.to_register"
	ActionToLogin    Key = "action.to_login"
	ActionLogout     Key = "action.logout"

	HomeGreeting    Key = "home.greeting"
	LoggedOut       Key = "session.logged_out"
	SessionRequired Key = "session.required"
)

var translations = map[language.Tag]map[Key]string{
	language.Turkish: {
		TitleError:           "HATA",
		TitleMissingFields:   "Eksik Bilgi",
		TitleInvalidInput:    "Hatalı Giriş",
		TitleRegisterError:   "Kayıt Hatası",
		TitleLoginSucceeded:  "Giriş Başarılı",
		TitleRegisterSuccess: "Başarılı",

		LoginMissingFields:    "Lütfen e-posta ve şifre girin.",
		RegisterMissingFields: "Lütfen tüm alanları doldurun.",
		InvalidEmailFormat:    "Geçersiz e-posta formatı.",
		WeakPassword:          "Şifre 6 ile 25 karakter arasında olmalı ve boşluk içermemeli.",
		PasswordMismatch:      "Şifreler eşleşmiyor.",

		InvalidEmail:      "Geçersiz E-posta Adresi.",
		UserNotFound:      "Bu e-posta ile kayıtlı bir kullanıcı bulunamadı.",
		WrongPassword:     "Şifreniz yanlış. Lütfen tekrar deneyin.",
		NetworkError:      "İnternet bağlantısı yok.",
		EmailAlreadyInUse: "Bu e-posta adresi zaten kullanımda.",
		TooManyAttempts:   "Çok fazla deneme yapıldı. Lütfen daha sonra tekrar deneyin.",
		UserDisabled:      "Bu hesap devre dışı bırakılmış.",
		UnknownError:      "Bir hata oluştu: %s",

		SubmissionInProgress: "İşleminiz sürüyor, lütfen bekleyin.",
		Welcome:              "Hoş geldiniz!",
		Registered:           "Kayıt başarılı! Anasayfaya gitmek için Tamam'a dokunun.",

		Acknowledge: "Tamam",
		Loading:     "Lütfen bekleyin...",

		PageLogin:    "Giriş Yap",
		PageRegister: "Kayıt Ol",
		PageHome:     "Anasayfa",

		FieldName:            "Ad",
		FieldSurname:         "Soyad",
		FieldEmail:           "E-posta",
		FieldPassword:        "Şifre",
		FieldPasswordConfirm: "Şifre (Tekrar)",

		ActionLogin:      "Giriş Yap",
		ActionRegister:   "Kayıt Ol",
		ActionToRegister: "Hesabın yok mu? Kayıt ol",
		ActionToLogin:    "Zaten hesabın var mı? Giriş yap",
		ActionLogout:     "Çıkış Yap",

		HomeGreeting:    "Merhaba, %s",
		LoggedOut:       "Çıkış yapıldı.",
		SessionRequired: "Devam etmek için giriş yapın.",
	},
	language.English: {
		TitleError:           "ERROR",
		TitleMissingFields:   "Missing Information",
		TitleInvalidInput:    "Invalid Input",
		TitleRegisterError:   "Registration Error",
		TitleLoginSucceeded:  "Signed In",
		TitleRegisterSuccess: "Success",

		LoginMissingFields:    "Please enter your email and password.",
		RegisterMissingFields: "Please fill in all fields.",
		InvalidEmailFormat:    "Invalid email format.",
		WeakPassword:          "Password must be 6 to 25 characters long and contain no spaces.",
		PasswordMismatch:      "Passwords do not match.",

		InvalidEmail:      "Invalid email address.",
		UserNotFound:      "No user is registered with this email.",
		WrongPassword:     "Your password is incorrect. Please try again.",
		NetworkError:      "No internet connection.",
		EmailAlreadyInUse: "This email address is already in use.",
		TooManyAttempts:   "Too many attempts. Please try again later.",
		UserDisabled:      "This account has been disabled.",
		UnknownError:      "An error occurred: %s",

		SubmissionInProgress: "Your request is in progress, please wait.",
		Welcome:              "Welcome!",
		Registered:           "Registration successful! Tap OK to continue to the home page.",

		Acknowledge: "OK",
		Loading:     "Please wait...",

		PageLogin:    "Sign In",
		PageRegister: "Create Account",
		PageHome:     "Home",

		FieldName:            "Name",
		FieldSurname:         "Surname",
		FieldEmail:           "Email",
		FieldPassword:        "Password",
		FieldPasswordConfirm: "Confirm Password",

		ActionLogin:      "Sign In",
		ActionRegister:   "Register",
		ActionToRegister: "No account yet? Register",
		ActionToLogin:    "Already registered? Sign in",
		ActionLogout:     "Sign Out",

		HomeGreeting:    "Hello, %s",
		LoggedOut:       "You have been signed out.",
		SessionRequired: "Please sign in to continue.",
	},
}

// Supported lists the available languages. The first entry is the fallback.
var Supported = []language.Tag{language.Turkish, language.English}

// Catalog translates message keys for the supported languages.
type Catalog struct {
	cat     *catalog.Builder
	matcher language.Matcher
}

// New builds the message catalog. The fallback language is used when a key
// or language is missing.
func New(fallback language.Tag) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("failed to register message %q for %s: %w", key, tag, err)
			}
		}
	}
	tags := []language.Tag{fallback}
	for _, t := range Supported {
		if t != fallback {
			tags = append(tags, t)
		}
	}
	return &Catalog{cat: b, matcher: language.NewMatcher(tags)}, nil
}

// MustNew is like New but panics on error. Useful for wiring at startup.
func MustNew(fallback language.Tag) *Catalog {
	c, err := New(fallback)
	if err != nil {
		panic(err)
	}
	return c
}

// Text returns the message for key in the given language, formatting args
// into it when the message has verbs.
func (c *Catalog) Text(tag language.Tag, key Key, args ...any) string {
	p := message.NewPrinter(c.Match(tag.String()), message.Catalog(c.cat))
	return p.Sprintf(string(key), args...)
}

// Printer binds a catalog to one language.
type Printer struct {
	catalog *Catalog
	tag     language.Tag
}

// For returns a Printer for the given language.
func (c *Catalog) For(tag language.Tag) Printer {
	return Printer{catalog: c, tag: tag}
}

// T translates key.
func (p Printer) T(key Key, args ...any) string {
	return p.catalog.Text(p.tag, key, args...)
}

// Tag is the printer's language.
func (p Printer) Tag() language.Tag {
	return p.tag
}

// Match picks the best supported language for an Accept-Language header
// value or a plain language name such as "en".
func (c *Catalog) Match(accept string) language.Tag {
	tag, _ := language.MatchStrings(c.matcher, accept)
	base, _ := tag.Base()
	return language.Make(base.String())
}
