package cmd

import (
	"errors"
	"fmt"

	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var form authflow.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Long: `Sign in with email and password. Missing values are prompted for.

Examples:
  tarifauth-cli login --email omer@example.com
  tarifauth-cli login --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prompt(&form.Email, i18n.FieldEmail); err != nil {
				return err
			}
			if err := a.prompt(&form.Password, i18n.FieldPassword); err != nil {
				return err
			}

			ctx, stop := screenContext(cmd.Context())
			defer stop()

			t := a.terminal()
			session, err := authflow.NewLoginFlow(a.deps).Submit(ctx, t, form)
			if errors.Is(err, authflow.ErrScreenClosed) {
				return err
			}
			if err != nil {
				// The alert already told the user what went wrong.
				return ErrAlerted
			}
			fmt.Fprintf(a.out, "%s (%s)\n", session.Email, session.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password (prompted when empty)")
	return cmd
}

// ErrAlerted marks a failure that was already shown to the user as an alert.
var ErrAlerted = errors.New("failed")
