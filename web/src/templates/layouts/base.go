package layouts

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/sosyaltarif/tarifauth/internal/view"
	"github.com/sosyaltarif/tarifauth/web/src/templates/partials"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base is the page shell shared by every screen. lang is a BCP 47 tag.
func Base(title, lang string, flashes view.FlashData, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang(lang),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
			),
			g.Body(
				hx.Boost("true"),
				g.Main(
					g.Class("container"),
					partials.Flashes(flashes),
					cmp.Group(body),
				),
			),
		),
	)
}
