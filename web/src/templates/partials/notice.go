package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sosyaltarif/tarifauth/internal/view"
)

// Notice renders a blocking alert with its single acknowledgement link.
func Notice(n view.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "notice notice-error"
		if n.Success {
			class = "notice notice-success"
		}
		parts := []string{
			`<section class="`, class, `" role="alertdialog" aria-labelledby="notice-title">`,
			`<h2 id="notice-title">`, templ.EscapeString(n.Title), `</h2>`,
			`<p>`, templ.EscapeString(n.Message), `</p>`,
			`<a class="button" href="`, templ.EscapeString(string(templ.URL(n.Href))), `">`,
			templ.EscapeString(n.Action), `</a>`,
			`</section>`,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}
