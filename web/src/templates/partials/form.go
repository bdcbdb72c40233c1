package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Field renders a labelled input.
func Field(id, label, kind, value string, attrs ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("field"),
		g.Label(g.For(id), cmp.Text(label)),
		g.Input(
			g.ID(id),
			g.Name(id),
			g.Type(kind),
			cmp.If(value != "", g.Value(value)),
			cmp.Group(attrs),
		),
	)
}

// Spinner is the busy indicator htmx shows while a form is in flight.
func Spinner(id, label string) cmp.Node {
	return g.Span(g.ID(id), g.Class("htmx-indicator"), g.Role("status"), cmp.Text(label))
}
