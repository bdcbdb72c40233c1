package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/view/dto/auth"
	"github.com/sosyaltarif/tarifauth/web/src/templates/partials"
)

// Register is the account creation form.
func Register(data auth.RegisterData) cmp.Node {
	t := data.T
	return g.Section(
		g.Class("card"),
		g.H1(cmp.Text(t.T(i18n.PageRegister))),
		g.Form(
			g.ID("register-form"),
			g.Method("post"),
			g.Action(data.Action),
			hx.Indicator("#register-busy"),
			cmp.Attr("hx-disabled-elt", "find button"),
			partials.Field("name", t.T(i18n.FieldName), "text", data.Name, g.AutoComplete("given-name")),
			partials.Field("surname", t.T(i18n.FieldSurname), "text", data.Surname, g.AutoComplete("family-name")),
			partials.Field("email", t.T(i18n.FieldEmail), "email", data.Email, g.AutoComplete("email")),
			partials.Field("password", t.T(i18n.FieldPassword), "password", "", g.AutoComplete("new-password")),
			partials.Field("password_confirm", t.T(i18n.FieldPasswordConfirm), "password", "", g.AutoComplete("new-password")),
			g.Button(g.Type("submit"), cmp.Text(t.T(i18n.ActionRegister))),
			partials.Spinner("register-busy", t.T(i18n.Loading)),
		),
		g.P(g.A(g.Href(data.LoginHref), cmp.Text(t.T(i18n.ActionToLogin)))),
	)
}
