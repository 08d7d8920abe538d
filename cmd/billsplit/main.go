package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/cli"
	"github.com/nashbilliard/billsplit/internal/config"
	"github.com/nashbilliard/billsplit/internal/database"
	"github.com/nashbilliard/billsplit/internal/preference"
	"github.com/nashbilliard/billsplit/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so summaries can be piped
	logging.Setup(cfg.Log.Level)

	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	// Open database
	db, err := database.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	app := &cli.App{
		Bills:       bill.NewService(allocation.NewPolicyFactory(), cfg.BillOptions()),
		Preferences: preference.NewService(preference.NewRepository(db), cfg.Display.DarkMode),
		Locale:      cfg.Locale(),
	}

	// Detect interactive terminal for the summary form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
