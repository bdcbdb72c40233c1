package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode lets a templ component sit inside a gomponents tree.
type templNode struct {
	component templ.Component
	ctx       context.Context
}

func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// AdaptTemplToGomponent wraps a templ component as a gomponents node. The
// component renders with a background context since gomponents has none.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return templNode{component: component, ctx: context.Background()}
}
