package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/view/dto/auth"
	"github.com/sosyaltarif/tarifauth/web/src/templates/partials"
)

// Login is the sign-in form.
func Login(data auth.LoginData) cmp.Node {
	t := data.T
	return g.Section(
		g.Class("card"),
		g.H1(cmp.Text(t.T(i18n.PageLogin))),
		g.Form(
			g.ID("login-form"),
			g.Method("post"),
			g.Action(data.Action),
			hx.Indicator("#login-busy"),
			cmp.Attr("hx-disabled-elt", "find button"),
			partials.Field("email", t.T(i18n.FieldEmail), "email", data.Email, g.AutoComplete("email")),
			partials.Field("password", t.T(i18n.FieldPassword), "password", "", g.AutoComplete("current-password")),
			g.Button(g.Type("submit"), cmp.Text(t.T(i18n.ActionLogin))),
			partials.Spinner("login-busy", t.T(i18n.Loading)),
		),
		g.P(g.A(g.Href(data.RegisterHref), cmp.Text(t.T(i18n.ActionToRegister)))),
	)
}
