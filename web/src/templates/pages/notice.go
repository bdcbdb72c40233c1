package pages

import (
	cmp "maragu.dev/gomponents"

	"github.com/sosyaltarif/tarifauth/internal/view"
	"github.com/sosyaltarif/tarifauth/web/src/templates/partials"
)

// Notice shows a pending alert until the user acknowledges it.
func Notice(n view.Notice) cmp.Node {
	return view.AdaptTemplToGomponent(partials.Notice(n))
}
