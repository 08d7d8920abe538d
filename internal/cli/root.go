package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/internal/preference"
)

// ThemeStore is the part of the preference service the CLI needs
type ThemeStore interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error
	Toggle(ctx context.Context) (bool, error)
	Reset(ctx context.Context) (bool, error)
}

var _ ThemeStore = (*preference.Service)(nil)

// App holds the services used by CLI commands.
type App struct {
	Bills       *bill.Service
	Preferences ThemeStore
	Locale      language.Tag

	// IsInteractive reports whether stdin is a terminal a form can run on.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "billsplit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var lang string

	root := &cobra.Command{
		Use:           "billsplit",
		Short:         "Split a billiards table bill by attended minutes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&lang, "lang", "", "display language (en, vi)")

	translator := func() *i18n.Translator {
		return i18n.New(i18n.Match(lang, app.Locale))
	}

	root.AddCommand(
		newSummaryCmd(app, translator),
		newTemplateCmd(app),
		newThemeCmd(app, translator),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) darkMode(ctx context.Context) bool {
	if a.Preferences == nil {
		return false
	}
	dark, err := a.Preferences.DarkMode(ctx)
	if err != nil {
		return false
	}
	return dark
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
