package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/view/dto/auth"
)

// Home is the signed-in landing page.
func Home(data auth.HomeData) cmp.Node {
	name := data.DisplayName
	if name == "" {
		name = data.Email
	}
	return g.Section(
		g.Class("card"),
		g.H1(cmp.Text(data.T.T(i18n.HomeGreeting, name))),
		g.P(g.Class("muted"), cmp.Text(data.Email)),
		g.A(g.Class("button"), g.Href(data.LogoutHref), cmp.Text(data.T.T(i18n.ActionLogout))),
	)
}
