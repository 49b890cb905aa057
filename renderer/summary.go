package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradelots"
)

// SummaryMarkdown renders the per-symbol P&L of the portfolio.
func SummaryMarkdown(s *tradelots.PortfolioSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", s.AsOf)
	fmt.Fprintf(&b, "Amounts in %s at the rate of the day.\n\n", s.Currency)
	fmt.Fprintf(&b, "- **Realized P&L**: %s\n", s.TotalRealized.SignedString())
	fmt.Fprintf(&b, "- **Buy volume**: %s\n", s.TotalBuyVolume)
	fmt.Fprintf(&b, "- **Sell volume**: %s\n", s.TotalSellVolume)
	fmt.Fprintf(&b, "- **Open positions**: %d for %s\n\n", len(s.Positions), s.OpenCost)

	fmt.Fprint(&b, "## Symbols\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Bought | Sold | Net Position | Avg Cost | Realized | Volume |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, x := range s.Symbols {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			symbolLabel(x.Symbol, x.Option, x.Expired),
			escape(x.Name),
			x.BuyQuantity,
			x.SellQuantity,
			x.NetPosition,
			x.AverageCost,
			x.RealizedPnL.SignedString(),
			x.TotalVolume,
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | | **%s** | **%s** |\n",
		"Total",
		s.TotalRealized.SignedString(),
		s.TotalBuyVolume.Add(s.TotalSellVolume),
	)

	WarningsMarkdown(&b, s.Warnings)
	return b.String()
}

// PositionsMarkdown renders the current positions of the portfolio.
func PositionsMarkdown(s *tradelots.PortfolioSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Positions on %s\n\n", s.AsOf)
	if len(s.Positions) == 0 {
		fmt.Fprint(&b, "No open position.\n")
		WarningsMarkdown(&b, s.Warnings)
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Market | Position | Avg Cost | Cost Basis | Lots |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, x := range s.Positions {
		position := x.NetPosition.String()
		if x.NetPosition.IsNegative() {
			position += " (short)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d |\n",
			symbolLabel(x.Symbol, x.Option, x.Expired),
			x.Market,
			position,
			x.AverageCost,
			x.TotalCost,
			len(x.Lots),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | |\n", s.OpenCost)

	WarningsMarkdown(&b, s.Warnings)
	return b.String()
}
