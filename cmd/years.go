package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelots/renderer"
	"github.com/google/subcommands"
)

type yearsCmd struct{}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the financial years with disposals" }
func (*yearsCmd) Usage() string {
	return `tlc years

  Lists the financial years in which something was sold, most recent first.
`
}

func (*yearsCmd) SetFlags(*flag.FlagSet) {}

func (*yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, _, err := DecodeAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trades: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.YearsMarkdown(as.FinancialYears()))
	return subcommands.ExitSuccess
}
