package authflow

import (
	"context"
	"fmt"

	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/pubsub"
)

// RegistrationFlow creates an account from the registration screen.
type RegistrationFlow struct {
	flow
}

// NewRegistrationFlow creates a RegistrationFlow.
func NewRegistrationFlow(deps Dependencies) *RegistrationFlow {
	return &RegistrationFlow{flow: newFlow("register", deps)}
}

// Submit validates the form, creates the account and reports the outcome to
// p. On success the confirmation alert carries DestinationHome; the presenter
// navigates when the user acknowledges it.
func (f *RegistrationFlow) Submit(ctx context.Context, p Presenter, form RegistrationForm) (*domain.Account, error) {
	log := logging.FromContext(ctx).With("flow", f.name, "screen", p.ScreenID())

	if err := form.Validate(); err != nil {
		return nil, f.fail(p, i18n.TitleRegisterError, i18n.RegisterMissingFields, Classify(err))
	}

	release, failure := f.acquire(ctx, log, p)
	if failure != nil {
		return nil, f.fail(p, i18n.TitleRegisterError, i18n.RegisterMissingFields, failure)
	}
	defer release()

	p.BusyStarted()
	account, err := await(ctx, func(ctx context.Context) (*domain.Account, error) {
		account, err := f.provider.CreateAccount(ctx, form.Email, form.Password)
		if err != nil {
			return nil, err
		}
		f.setDisplayName(ctx, account, form.DisplayName())
		return account, nil
	})
	if ctx.Err() != nil {
		log.Info("Registration screen closed before sign-up settled", "email", MaskEmail(form.Email))
		return nil, fmt.Errorf("%w: %w", ErrScreenClosed, ctx.Err())
	}
	p.BusyStopped()

	if err != nil {
		failure := Classify(err)
		log.Warn("Account creation failed", "email", MaskEmail(form.Email), "reason", failure.Kind.String(), "error", err)
		f.publish(ctx, log, func(ctx context.Context, pub pubsub.Publisher) error {
			return pubsub.Publish(ctx, pub, pubsub.RegistrationFailedEvent, "", pubsub.RegistrationFailed{
				Email:  form.Email,
				Reason: failure.Kind.String(),
			})
		})
		return nil, f.fail(p, i18n.TitleRegisterError, i18n.RegisterMissingFields, failure)
	}

	log.Info("Account created", "user_id", account.UserID)
	f.publish(ctx, log, func(ctx context.Context, pub pubsub.Publisher) error {
		return pubsub.Publish(ctx, pub, pubsub.AccountCreatedEvent, account.UserID, pubsub.AccountCreated{
			UserID:      account.UserID,
			Email:       account.Email,
			DisplayName: account.DisplayName,
		})
	})

	tag := p.Language()
	p.ShowAlert(Alert{
		Kind:    AlertSuccess,
		Title:   f.messages.Text(tag, i18n.TitleRegisterSuccess),
		Message: f.messages.Text(tag, i18n.Registered),
		Action:  f.messages.Text(tag, i18n.Acknowledge),
		Next:    DestinationHome,
	})
	return account, nil
}

// setDisplayName stores "Name Surname" on the account when the provider
// supports profiles. Failure is logged; the account already exists.
func (f *RegistrationFlow) setDisplayName(ctx context.Context, account *domain.Account, name string) {
	updater, ok := f.provider.(domain.ProfileUpdater)
	if !ok {
		return
	}
	if err := updater.UpdateDisplayName(ctx, account, name); err != nil {
		logging.FromContext(ctx).Warn("Failed to set display name", "user_id", account.UserID, "error", err)
		return
	}
	account.DisplayName = name
	if account.Session != nil {
		account.Session.DisplayName = name
	}
}
