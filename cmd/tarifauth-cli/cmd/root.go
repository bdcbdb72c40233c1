package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/config"
	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/provider"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// newProvider is replaced in tests.
var newProvider = provider.New

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg      *config.Config
	provider domain.AuthProvider
	messages *i18n.Catalog
	lang     language.Tag
	in       *bufio.Reader
	out      io.Writer
	deps     authflow.Dependencies
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		envFile string
		lang    string
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "tarifauth-cli",
		Short: "Sign in to or register a Sosyal Tarif account from the terminal",
		Long: `tarifauth-cli runs the same login and registration flows as the web
screens, against the auth provider configured in the environment
(AUTH_PROVIDER, FIREBASE_API_KEY, ...).

Use "tarifauth-cli [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd, envFile, lang)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before the environment")
	root.PersistentFlags().StringVar(&lang, "lang", "", "message language (tr, en); defaults to DEFAULT_LANGUAGE")

	root.AddCommand(newLoginCmd(a), newRegisterCmd(a), newVersionCmd())
	return root
}

func (a *app) init(cmd *cobra.Command, envFile, lang string) error {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), os.Getenv("LOG_FORMAT"), level))

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	p, err := newProvider(cfg)
	if err != nil {
		return err
	}
	fallback, err := language.Parse(cfg.GetDefaultLanguage())
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_LANGUAGE %q: %w", cfg.GetDefaultLanguage(), err)
	}
	messages, err := i18n.New(fallback)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.provider = p
	a.messages = messages
	if lang == "" {
		lang = cfg.GetDefaultLanguage()
	}
	a.lang = messages.Match(lang)
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.out = cmd.OutOrStdout()
	a.deps = authflow.Dependencies{Provider: p, Messages: messages}
	return nil
}

func (a *app) terminal() *terminal {
	return &terminal{
		in:       a.in,
		out:      a.out,
		lang:     a.lang,
		screenID: uuid.NewString(),
		messages: a.messages,
	}
}

// prompt asks for a value unless it was given as a flag.
func (a *app) prompt(value *string, label i18n.Key) error {
	if *value != "" {
		return nil
	}
	fmt.Fprintf(a.out, "%s: ", a.messages.Text(a.lang, label))
	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	*value = strings.TrimRight(line, "\r\n")
	return nil
}

// screenContext ends when the user interrupts, the terminal's way of
// closing the screen.
func screenContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
