package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradelots"
)

// PerformanceMarkdown renders a performance series.
func PerformanceMarkdown(s *tradelots.PerformanceSeries) string {
	var b strings.Builder

	if s.Start.IsZero() {
		fmt.Fprintf(&b, "# Performance (%s)\n\n", s.Timeframe)
	} else {
		fmt.Fprintf(&b, "# Performance (%s, since %s)\n\n", s.Timeframe, s.Start)
	}
	fmt.Fprintf(&b, "Realized gains in %s, %s buckets.\n\n", s.Currency, s.Period)
	fmt.Fprintf(&b, "- **Total P&L**: %s\n", s.TotalPnL.SignedString())
	fmt.Fprintf(&b, "- **Closed lots**: %d (%d winning, %s)\n", s.Trades, s.Wins, s.WinRate)
	if s.Best != nil {
		fmt.Fprintf(&b, "- **Best**: %s %s\n", s.Best.Key, s.Best.Gain.SignedString())
		fmt.Fprintf(&b, "- **Worst**: %s %s\n", s.Worst.Key, s.Worst.Gain.SignedString())
	}
	fmt.Fprintln(&b)

	if len(s.Buckets) == 0 {
		fmt.Fprint(&b, "No realized gain in this timeframe.\n")
		WarningsMarkdown(&b, s.Warnings)
		return b.String()
	}

	fmt.Fprintln(&b, "| Period | Closed | Wins | Gain | Cumulative |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, x := range s.Buckets {
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s |\n",
			x.Key,
			x.Trades,
			x.Wins,
			x.Gain.SignedString(),
			x.Cumulative.SignedString(),
		)
	}

	WarningsMarkdown(&b, s.Warnings)
	return b.String()
}
