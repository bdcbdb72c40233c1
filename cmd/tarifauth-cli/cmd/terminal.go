package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"golang.org/x/text/language"
)

// terminal presents a flow on a line-oriented terminal.
type terminal struct {
	in       *bufio.Reader
	out      io.Writer
	lang     language.Tag
	screenID string
	messages *i18n.Catalog
	// landed is the last destination navigated to.
	landed authflow.Destination
}

var _ authflow.Presenter = (*terminal)(nil)

func (t *terminal) ScreenID() string { return t.screenID }
func (t *terminal) Language() language.Tag { return t.lang }

func (t *terminal) BusyStarted() {
	fmt.Fprintln(t.out, t.messages.Text(t.lang, i18n.Loading))
}

func (t *terminal) BusyStopped() {}

// ShowAlert prints the alert. An alert that leads somewhere waits for the
// user to acknowledge it first.
func (t *terminal) ShowAlert(a authflow.Alert) {
	fmt.Fprintf(t.out, "[%s] %s\n", a.Title, a.Message)
	if a.Next == authflow.DestinationNone {
		return
	}
	fmt.Fprintf(t.out, "%s ↵ ", a.Action)
	_, _ = t.in.ReadString('\n')
	t.Navigate(a.Next)
}

func (t *terminal) Navigate(d authflow.Destination) {
	t.landed = d
	var page i18n.Key
	switch d {
	case authflow.DestinationHome:
		page = i18n.PageHome
	case authflow.DestinationLogin:
		page = i18n.PageLogin
	case authflow.DestinationRegister:
		page = i18n.PageRegister
	default:
		return
	}
	fmt.Fprintf(t.out, "» %s\n", t.messages.Text(t.lang, page))
}
