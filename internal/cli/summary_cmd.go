package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/i18n"
)

type summaryFlags struct {
	billInput
	file   string
	policy string
	asJSON bool
}

func newSummaryCmd(app *App, translator func() *i18n.Translator) *cobra.Command {
	var flags summaryFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Split a bill between the players",
		Long: `Split a bill between the players.

The bill comes from --file (a JSON bill, "-" for stdin), from flags, or,
when neither is given on a terminal, from an interactive form. Flags given
with --file are applied on top of the file.`,
		Example: `  billsplit summary --total 300 --start 14:00 --end 15:00 \
    --player Nam --player Huy=14:30-15:00 --owned Huy:Coke:2:25
  billsplit summary --file bill.json --policy catalog --lang vi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t := translator()

			b, policy, err := loadBill(cmd, app, t, &flags)
			if err != nil {
				return err
			}

			summary, err := app.Bills.Summarize(ctx, b, policy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary.ToResponse(t))
			}
			_, err = fmt.Fprint(out, renderSummary(out, app.darkMode(ctx), t, summary))
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read the bill from a JSON file (- for stdin)")
	cmd.Flags().StringVarP(&flags.policy, "policy", "p", "", "allocation policy: owned or catalog (default from config)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().StringVar(&flags.total, "total", "", "total bill in thousands")
	cmd.Flags().StringVar(&flags.start, "start", "", "session start (HH:mm)")
	cmd.Flags().StringVar(&flags.end, "end", "", "session end (HH:mm)")
	cmd.Flags().StringArrayVar(&flags.players, "player", nil, "participating player, NAME or NAME=HH:mm-HH:mm (repeatable)")
	cmd.Flags().StringArrayVar(&flags.items, "item", nil, "catalog item, NAME:QTY:COST[:PLAYER] (repeatable)")
	cmd.Flags().StringArrayVar(&flags.owned, "owned", nil, "player's own item, PLAYER:NAME:QTY:COST (repeatable)")

	return cmd
}

func loadBill(cmd *cobra.Command, app *App, t *i18n.Translator, flags *summaryFlags) (*bill.Bill, string, error) {
	if flags.file != "" {
		b, err := readBill(cmd, flags.file)
		if err != nil {
			return nil, "", err
		}
		if err := flags.billInput.apply(b); err != nil {
			return nil, "", err
		}
		return b, flags.policy, nil
	}

	in, policy := &flags.billInput, flags.policy
	if in.empty() && app.interactive() {
		form := newBillForm(t, app.Bills.Template(), app.Bills.DefaultPolicy())
		answers, chosen, err := form.run(cmd.Context())
		if err != nil {
			return nil, "", err
		}
		in = answers
		if policy == "" {
			policy = chosen
		}
	}

	b := app.Bills.Template()
	if err := in.apply(b); err != nil {
		return nil, "", err
	}
	return b, policy, nil
}

func readBill(cmd *cobra.Command, path string) (*bill.Bill, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening bill: %w", err)
		}
		defer f.Close()
		r = f
	}

	var b bill.Bill
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: decoding bill: %v", ErrInvalidInput, err)
	}
	return &b, nil
}
