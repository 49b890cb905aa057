package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/tradelots"
	"github.com/olekukonko/tablewriter"
)

// LotsTable prints the open lots and the matched portions of a symbol as
// terminal tables.
func LotsTable(w io.Writer, l tradelots.SymbolLedger) {
	fmt.Fprintf(w, "%s: %s open in %d lots, realized %s\n\n",
		symbolLabel(l.Symbol, l.Option, l.Expired), l.NetPosition, len(l.Lots), l.Realized.SignedString())

	if len(l.Lots) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header("#", "Opened", "Quantity", "Unit Cost", "Cost Basis")
		for i, lot := range l.Lots {
			table.Append(
				fmt.Sprintf("%d", i+1),
				lot.OpenedAt.UTC().Format(time.DateTime),
				lot.Quantity.String(),
				lot.CostPerUnit.String(),
				lot.CostBasis.String(),
			)
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(l.Matches) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Opened", "Closed", "Quantity", "Cost", "Proceeds", "Gain", "Note")
		for _, m := range l.Matches {
			note := ""
			switch {
			case m.Close.Synthetic:
				note = "expired"
			case m.Short:
				note = "short"
			}
			table.Append(
				day(m.OpenedAt()),
				day(m.ClosedAt()),
				m.Quantity.String(),
				m.Cost.String(),
				m.Proceeds.String(),
				m.Gain().SignedString(),
				note,
			)
		}
		table.Render()
	}
}
