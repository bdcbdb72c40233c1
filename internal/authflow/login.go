package authflow

import (
	"context"
	"fmt"

	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/pubsub"
)

// LoginFlow signs a user in from the login screen.
type LoginFlow struct {
	flow
}

// NewLoginFlow creates a LoginFlow.
func NewLoginFlow(deps Dependencies) *LoginFlow {
	return &LoginFlow{flow: newFlow("login", deps)}
}

// Submit validates the form, signs in with the provider and reports the
// outcome to p. On success it navigates to the home screen and returns the
// session; otherwise it shows an alert and returns a *Failure. If ctx ends
// before the provider answers, it returns ErrScreenClosed without touching p.
func (f *LoginFlow) Submit(ctx context.Context, p Presenter, form LoginForm) (*domain.Session, error) {
	log := logging.FromContext(ctx).With("flow", f.name, "screen", p.ScreenID())

	if err := form.Validate(); err != nil {
		return nil, f.fail(p, i18n.TitleError, i18n.LoginMissingFields, Classify(err))
	}

	release, failure := f.acquire(ctx, log, p)
	if failure != nil {
		return nil, f.fail(p, i18n.TitleError, i18n.LoginMissingFields, failure)
	}
	defer release()

	p.BusyStarted()
	session, err := await(ctx, func(ctx context.Context) (*domain.Session, error) {
		return f.provider.SignIn(ctx, form.Email, form.Password)
	})
	if ctx.Err() != nil {
		log.Info("Login screen closed before sign-in settled", "email", MaskEmail(form.Email))
		return nil, fmt.Errorf("%w: %w", ErrScreenClosed, ctx.Err())
	}
	p.BusyStopped()

	if err != nil {
		failure := Classify(err)
		log.Warn("Sign-in failed", "email", MaskEmail(form.Email), "reason", failure.Kind.String(), "error", err)
		f.publish(ctx, log, func(ctx context.Context, pub pubsub.Publisher) error {
			return pubsub.Publish(ctx, pub, pubsub.LoginFailedEvent, "", pubsub.LoginFailed{
				Email:  form.Email,
				Reason: failure.Kind.String(),
			})
		})
		return nil, f.fail(p, i18n.TitleError, i18n.LoginMissingFields, failure)
	}

	log.Info("User signed in", "user_id", session.UserID)
	f.publish(ctx, log, func(ctx context.Context, pub pubsub.Publisher) error {
		return pubsub.Publish(ctx, pub, pubsub.LoginSucceededEvent, session.UserID, pubsub.LoginSucceeded{
			UserID: session.UserID,
			Email:  session.Email,
		})
	})

	tag := p.Language()
	p.ShowAlert(Alert{
		Kind:    AlertSuccess,
		Title:   f.messages.Text(tag, i18n.TitleLoginSucceeded),
		Message: f.messages.Text(tag, i18n.Welcome),
		Action:  f.messages.Text(tag, i18n.Acknowledge),
	})
	p.Navigate(DestinationHome)
	return session, nil
}
