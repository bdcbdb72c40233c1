package authflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/guard"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/pubsub"
	"golang.org/x/text/language"
)

// Dependencies holds the services both flows need.
type Dependencies struct {
	Provider domain.AuthProvider
	// Guard defaults to a process-local guard.
	Guard guard.Guard
	// Publisher is optional; events are skipped when nil.
	Publisher pubsub.Publisher
	// Messages defaults to a Turkish-first catalog.
	Messages *i18n.Catalog
}

// flow carries what LoginFlow and RegistrationFlow share.
type flow struct {
	name      string
	provider  domain.AuthProvider
	guard     guard.Guard
	publisher pubsub.Publisher
	messages  *i18n.Catalog
}

func newFlow(name string, deps Dependencies) flow {
	f := flow{
		name:      name,
		provider:  deps.Provider,
		guard:     deps.Guard,
		publisher: deps.Publisher,
		messages:  deps.Messages,
	}
	if f.guard == nil {
		f.guard = guard.NewMemory()
	}
	if f.messages == nil {
		f.messages = i18n.MustNew(language.Turkish)
	}
	return f
}

// acquire takes the duplicate-submission hold for the screen. Backend errors
// fail open: the guard protects against double taps, it does not gate access.
func (f *flow) acquire(ctx context.Context, log *slog.Logger, p Presenter) (func(), *Failure) {
	release, err := f.guard.Acquire(ctx, f.name+":"+p.ScreenID())
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, guard.ErrHeld):
		log.Info("Rejected duplicate submission")
		return nil, &Failure{Kind: KindSubmissionInProgress}
	default:
		log.Warn("Submission guard unavailable, continuing without it", "error", err)
		return func() {}, nil
	}
}

// fail shows the alert for a failure and returns it as an error.
func (f *flow) fail(p Presenter, providerTitle i18n.Key, missingKey i18n.Key, failure *Failure) error {
	p.ShowAlert(f.failureAlert(p.Language(), providerTitle, missingKey, failure))
	return failure
}

var kindMessages = map[Kind]i18n.Key{
	KindInvalidEmailFormat:               i18n.InvalidEmailFormat,
	KindWeakPassword:                     i18n.WeakPassword,
	KindPasswordMismatch:                 i18n.PasswordMismatch,
	KindInvalidEmail:                     i18n.InvalidEmail,
	KindUserNotFound:                     i18n.UserNotFound,
	KindWrongPasswordOrInvalidCredential: i18n.WrongPassword,
	KindNetworkError:                     i18n.NetworkError,
	KindEmailAlreadyInUse:                i18n.EmailAlreadyInUse,
	KindTooManyAttempts:                  i18n.TooManyAttempts,
	KindUserDisabled:                     i18n.UserDisabled,
	KindSubmissionInProgress:             i18n.SubmissionInProgress,
}

func (f *flow) failureAlert(tag language.Tag, providerTitle, missingKey i18n.Key, failure *Failure) Alert {
	title := providerTitle
	switch {
	case failure.Kind == KindMissingFields:
		title = i18n.TitleMissingFields
	case failure.Kind.Local():
		title = i18n.TitleInvalidInput
	}

	var msg string
	switch failure.Kind {
	case KindMissingFields:
		msg = f.messages.Text(tag, missingKey)
	case KindUnknownProviderError:
		msg = f.messages.Text(tag, i18n.UnknownError, failure.Raw)
	default:
		msg = f.messages.Text(tag, kindMessages[failure.Kind])
	}

	return Alert{
		Kind:    AlertError,
		Title:   f.messages.Text(tag, title),
		Message: msg,
		Action:  f.messages.Text(tag, i18n.Acknowledge),
	}
}

func (f *flow) publish(ctx context.Context, log *slog.Logger, publish func(context.Context, pubsub.Publisher) error) {
	if f.publisher == nil {
		return
	}
	if err := publish(ctx, f.publisher); err != nil {
		log.Warn("Failed to publish auth event", "error", err)
	}
}

// await runs call in its own goroutine and waits for it or for ctx to end,
// whichever comes first. A result that arrives after ctx ended is discarded.
func await[T any](ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := call(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// MaskEmail keeps enough of an address to correlate log lines.
func MaskEmail(e string) string {
	e = strings.TrimSpace(e)
	local, domainPart, ok := strings.Cut(e, "@")
	if !ok {
		if len(e) > 3 {
			return e[:3] + "***"
		}
		return "***"
	}
	if len(local) > 2 {
		local = local[:2]
	}
	return local + "***@" + domainPart
}
