package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/internal/preference"
)

func newThemeCmd(app *App, translator func() *i18n.Translator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dark, err := app.Preferences.DarkMode(cmd.Context())
			if err != nil {
				return err
			}
			return printTheme(cmd, translator(), dark)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the current theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dark, err := app.Preferences.DarkMode(cmd.Context())
				if err != nil {
					return err
				}
				return printTheme(cmd, translator(), dark)
			},
		},
		&cobra.Command{
			Use:       "set dark|light",
			Short:     "Save the theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(preference.ThemeDark), string(preference.ThemeLight)},
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := preference.ParseTheme(args[0])
				if err != nil {
					return err
				}
				if err := app.Preferences.SetDarkMode(cmd.Context(), theme.IsDark()); err != nil {
					return err
				}
				return printTheme(cmd, translator(), theme.IsDark())
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between dark and light",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dark, err := app.Preferences.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				return printTheme(cmd, translator(), dark)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the saved theme and use the default",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dark, err := app.Preferences.Reset(cmd.Context())
				if err != nil {
					return err
				}
				return printTheme(cmd, translator(), dark)
			},
		},
	)

	return cmd
}

func printTheme(cmd *cobra.Command, t *i18n.Translator, dark bool) error {
	label := i18n.LabelLightMode
	if dark {
		label = i18n.LabelDarkMode
	}
	return writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s (%s)", preference.ThemeFor(dark), t.Text(label)))
}
