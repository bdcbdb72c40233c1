package authflow

import "golang.org/x/text/language"

// Destination is a screen a flow can navigate to.
type Destination int

const (
	DestinationNone Destination = iota
	DestinationHome
	DestinationLogin
	DestinationRegister
)

func (d Destination) String() string {
	switch d {
	case DestinationHome:
		return "home"
	case DestinationLogin:
		return "login"
	case DestinationRegister:
		return "register"
	default:
		return "none"
	}
}

// AlertKind tells a presenter how to style an alert.
type AlertKind int

const (
	AlertError AlertKind = iota
	AlertSuccess
)

// Alert is a titled message with a single acknowledgement action.
type Alert struct {
	Kind    AlertKind
	Title   string
	Message string
	// Action is the label of the acknowledgement button.
	Action string
	// Next is where acknowledging the alert leads. DestinationNone just
	// dismisses it.
	Next Destination
}

// Presenter is the screen a flow reports to. A flow calls it only from the
// goroutine that called Submit.
type Presenter interface {
	// ScreenID identifies the screen instance; one submission per screen may
	// be in flight at a time.
	ScreenID() string
	Language() language.Tag
	BusyStarted()
	BusyStopped()
	ShowAlert(Alert)
	Navigate(Destination)
}
