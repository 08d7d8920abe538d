package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a blank bill as JSON",
		Long:  "Print a bill for the configured roster and catalog. Edit it and pass it to \"billsplit summary --file\".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(app.Bills.Template())
		},
	}
}
