package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tradelots/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	financialYear string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "capital gains report in AUD" }
func (*gainsCmd) Usage() string {
	return `tlc gains [-fy <year>]

  Lists every lot matched by a disposal, with its AUD cost basis, proceeds
  and capital gain. Financial year 2023 runs from 2023-07-01 to 2024-06-30.
  Without -fy, every disposal since 2000 is listed.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.financialYear, "fy", "", "Financial year, by its starting year (2023 or FY2023-24)")
}

// parseFinancialYear accepts "2023" and "FY2023-24".
func parseFinancialYear(s string) (int, error) {
	s = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "FY")
	s, _, _ = strings.Cut(s, "-")
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid financial year %q: %w", s, err)
	}
	return y, nil
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var fy *int
	if c.financialYear != "" {
		y, err := parseFinancialYear(c.financialYear)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		fy = &y
	}

	as, _, err := DecodeAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(as.CapitalGains(fy)))
	return subcommands.ExitSuccess
}
