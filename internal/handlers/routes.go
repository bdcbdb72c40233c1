package handlers

import "github.com/sosyaltarif/tarifauth/internal/authflow"

// Routes maps flow destinations and auxiliary screens to URL paths.
type Routes struct {
	Home     string
	Login    string
	Register string
	Notice   string
	Logout   string
}

// DefaultRoutes is the URL layout registered by the server.
var DefaultRoutes = Routes{
	Home:     "/",
	Login:    "/auth/login",
	Register: "/auth/register",
	Notice:   "/auth/notice",
	Logout:   "/auth/logout",
}

// Path returns the path for d. DestinationNone has no path.
func (r Routes) Path(d authflow.Destination) string {
	switch d {
	case authflow.DestinationHome:
		return r.Home
	case authflow.DestinationLogin:
		return r.Login
	case authflow.DestinationRegister:
		return r.Register
	default:
		return ""
	}
}
