package cmd

import (
	"errors"

	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app) *cobra.Command {
	var form authflow.RegistrationForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. Missing values are prompted for. On success the
confirmation waits for Enter before continuing to the home screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := []struct {
				value *string
				label i18n.Key
			}{
				{&form.Name, i18n.FieldName},
				{&form.Surname, i18n.FieldSurname},
				{&form.Email, i18n.FieldEmail},
				{&form.Password, i18n.FieldPassword},
				{&form.PasswordConfirm, i18n.FieldPasswordConfirm},
			}
			for _, f := range fields {
				if err := a.prompt(f.value, f.label); err != nil {
					return err
				}
			}

			ctx, stop := screenContext(cmd.Context())
			defer stop()

			_, err := authflow.NewRegistrationFlow(a.deps).Submit(ctx, a.terminal(), form)
			if err != nil && !errors.Is(err, authflow.ErrScreenClosed) {
				return ErrAlerted
			}
			return err
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "first name")
	cmd.Flags().StringVar(&form.Surname, "surname", "", "last name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (prompted when empty)")
	cmd.Flags().StringVar(&form.PasswordConfirm, "password-confirm", "", "password again (prompted when empty)")
	return cmd
}
