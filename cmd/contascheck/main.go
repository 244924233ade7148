// Command contascheck compares each account's cached saldo with the saldo of
// its last movement and optionally writes the derived value back.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/govalues/money"

	"github.com/tinoosan/contas/internal/config"
	"github.com/tinoosan/contas/internal/ledger"
	"github.com/tinoosan/contas/internal/service/journal"
	"github.com/tinoosan/contas/internal/storage/jsonl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("contascheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional env file")
	dataDir := fs.String("data", "", "data directory (overrides CONTAS_DATA_DIR)")
	fix := fs.Bool("fix", false, "write derived balances onto drifting accounts")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	accounts := jsonl.NewAccountStore(cfg.AccountsPath(), logger)
	movements := jsonl.NewLedgerStore(cfg.LedgerPath(), accounts, logger)
	svc := journal.New(movements, movements, accounts, logger)

	ctx := context.Background()
	drifts, err := svc.Audit(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "audit:", err)
		return 1
	}
	if len(drifts) == 0 {
		fmt.Fprintf(stdout, "%s: all balances match the ledger\n", filepath.Clean(cfg.DataDir))
		return 0
	}
	if err := report(stdout, cfg.Currency, drifts); err != nil {
		fmt.Fprintln(stderr, "report:", err)
		return 1
	}
	if !*fix {
		return 3
	}
	if err := svc.Resync(ctx, drifts); err != nil {
		fmt.Fprintln(stderr, "fix:", err)
		return 1
	}
	fmt.Fprintf(stdout, "%d account(s) resynced\n", len(drifts))
	return 0
}

func report(w io.Writer, currency string, drifts []journal.Drift) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODIGO\tCACHED\tLEDGER\tDIFF")
	for _, d := range drifts {
		cached, err := asMoney(currency, d.Cached)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Codigo, err)
		}
		derived, err := asMoney(currency, d.Derived)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Codigo, err)
		}
		diff, err := derived.Sub(cached)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Codigo, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Codigo, cached, derived, diff)
	}
	return tw.Flush()
}

func asMoney(currency string, a ledger.Amount) (money.Amount, error) {
	return money.ParseAmount(currency, a.String())
}
