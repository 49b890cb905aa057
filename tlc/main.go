// Command tlc reports on the trade lots of a broker export: capital gains,
// positions, P&L and performance.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradelots/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, if any.
	cmd.Completion().Complete("tlc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
