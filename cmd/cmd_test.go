package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tradesCSV = `Symbol,Name,Side,Status,Filled@Avg Price,Fill Time,Commission,Total,Markets
AAPL,Apple,Buy,Filled,10@100,"Jan 2, 2024 10:00:00 ET",0,0,US
AAPL,Apple,Sell,Filled,4@110,"Feb 1, 2024 10:00:00 ET",0,0,US
AAPL,Apple,Sell,Cancelled,6@90,"Feb 2, 2024 10:00:00 ET",0,0,US
CBA,Commonwealth Bank,Buy,Filled,5@100,"Jan 15, 2024 10:00:00 AEST",0,0,
`

const ratesCSV = `date,rate
2024-01-02,1.5
2024-02-01,1.5
`

// setup points the global flags to temporary trades and rates files and
// captures the reports.
func setup(t *testing.T) (dir string, out *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	trades := filepath.Join(dir, "trades.csv")
	require.NoError(t, os.WriteFile(trades, []byte(tradesCSV), 0o644))
	rates := filepath.Join(dir, "rates.csv")
	require.NoError(t, os.WriteFile(rates, []byte(ratesCSV), 0o644))

	oldConfig, oldTrades, oldRates, oldRaw, oldStdout := *configFile, *tradesFile, *ratesFile, *raw, stdout
	t.Cleanup(func() {
		*configFile, *tradesFile, *ratesFile, *raw, stdout = oldConfig, oldTrades, oldRates, oldRaw, oldStdout
	})

	out = &bytes.Buffer{}
	*configFile = filepath.Join(dir, "tradelots.yaml")
	*tradesFile, *ratesFile, *raw, stdout = trades, rates, true, out
	return dir, out
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want []string
	}{
		{"summary", &summaryCmd{}, []string{"-c", "usd"}, []string{"# Portfolio Summary on", "| AAPL | Apple | 10 | 4 | 6 |"}},
		{"positions", &positionsCmd{}, nil, []string{"# Positions on", "| CBA | AU | 5 |"}},
		{"gains", &gainsCmd{}, []string{"-fy", "FY2023-24"}, []string{"# Capital Gains FY2023-24", "| 2024-02-01 | 2024-01-02 | AAPL | 4 |"}},
		{"all gains", &gainsCmd{}, nil, []string{"# Capital Gains up to", "+$60.00"}},
		{"years", &yearsCmd{}, nil, []string{"- **FY2023-24**"}},
		{"performance", &performanceCmd{}, []string{"-t", "all"}, []string{"# Performance (all)", "| 2024-02 | 1 | 1 |"}},
		{"lots", &lotsCmd{}, []string{"-s", "aapl", "-c", "USD"}, []string{"AAPL: 6 open in 1 lots"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, out := setup(t)

			status := run(t, tc.cmd, tc.args...)

			require.Equal(t, subcommands.ExitSuccess, status)
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestCommands_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"unsupported currency", &summaryCmd{}, []string{"-c", "EUR"}, subcommands.ExitUsageError},
		{"bad financial year", &gainsCmd{}, []string{"-fy", "last"}, subcommands.ExitUsageError},
		{"bad timeframe", &performanceCmd{}, []string{"-t", "2w"}, subcommands.ExitUsageError},
		{"missing symbol", &lotsCmd{}, nil, subcommands.ExitUsageError},
		{"unknown symbol", &lotsCmd{}, []string{"-s", "MSFT"}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			assert.Equal(t, tc.want, run(t, tc.cmd, tc.args...))
		})
	}
}

func TestCommands_MissingFiles(t *testing.T) {
	dir, out := setup(t)

	*ratesFile = filepath.Join(dir, "missing.csv")
	assert.Equal(t, subcommands.ExitSuccess, run(t, &summaryCmd{}), "a missing rates file falls back")
	assert.Contains(t, out.String(), "# Portfolio Summary on")

	*tradesFile = filepath.Join(dir, "missing.csv")
	assert.Equal(t, subcommands.ExitFailure, run(t, &summaryCmd{}))
}

func TestParseFinancialYear(t *testing.T) {
	for _, in := range []string{"2023", "FY2023-24", "fy2023"} {
		y, err := parseFinancialYear(in)
		require.NoError(t, err, in)
		assert.Equal(t, 2023, y, in)
	}
	_, err := parseFinancialYear("23/24")
	assert.Error(t, err)
}

func TestPredictSymbols(t *testing.T) {
	setup(t)
	assert.Equal(t, []string{"AAPL"}, predictSymbols("a"))
	assert.Equal(t, []string{"AAPL", "CBA"}, predictSymbols(""))
}
