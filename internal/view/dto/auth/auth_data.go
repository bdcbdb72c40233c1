package auth

import "github.com/sosyaltarif/tarifauth/internal/i18n"

// LoginData is the view model for the login page.
type LoginData struct {
	T            i18n.Printer
	Email        string
	Action       string
	RegisterHref string
}

// RegisterData is the view model for the registration page. Passwords are
// never echoed back.
type RegisterData struct {
	T         i18n.Printer
	Name      string
	Surname   string
	Email     string
	Action    string
	LoginHref string
}

// HomeData is the view model for the signed-in home page.
type HomeData struct {
	T           i18n.Printer
	DisplayName string
	Email       string
	LogoutHref  string
}
