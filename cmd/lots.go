package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tradelots/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	symbol   string
	currency string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display the FIFO lots of a symbol" }
func (*lotsCmd) Usage() string {
	return `tlc lots -s <symbol> [-c <currency>]

  Displays the open lots of a symbol, oldest first, and every portion
  matched so far.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to display")
	f.StringVar(&c.currency, "c", "", "Display currency (USD, AUD). Defaults to the configured currency.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-s is required")
		return subcommands.ExitUsageError
	}

	as, cfg, err := DecodeAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}
	cur, err := displayCurrency(c.currency, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, ws, ok := as.SymbolLedger(strings.ToUpper(c.symbol), cur)
	if !ok {
		fmt.Fprintf(os.Stderr, "No trade for symbol %q\n", c.symbol)
		return subcommands.ExitFailure
	}
	logWarnings(ws)
	renderer.LotsTable(stdout, ledger)
	return subcommands.ExitSuccess
}
