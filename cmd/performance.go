package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/renderer"
	"github.com/google/subcommands"
)

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	timeframe string
	currency  string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "realized P&L over time" }
func (*performanceCmd) Usage() string {
	return `tlc performance [-t 3m|6m|1y|all] [-c <currency>]

  Buckets realized gains per week (3m, 6m, 1y) or per month (all) with a
  running total, the win rate and the best and worst periods.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", tradelots.ThreeMonths.String(), "Timeframe (3m, 6m, 1y, all)")
	f.StringVar(&c.currency, "c", "", "Display currency (USD, AUD). Defaults to the configured currency.")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := tradelots.ParseTimeframe(c.timeframe)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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

	printMarkdown(renderer.PerformanceMarkdown(as.PerformanceSeries(tf, cur)))
	return subcommands.ExitSuccess
}
