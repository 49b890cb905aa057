package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/date"
)

func day(t time.Time) string { return t.UTC().Format(time.DateOnly) }

// GainsMarkdown renders a capital gains report, one row per matched lot.
func GainsMarkdown(r *tradelots.GainsReport) string {
	var b strings.Builder

	if r.FinancialYear != 0 {
		fmt.Fprintf(&b, "# Capital Gains %s\n\n", date.FinancialYearLabel(r.FinancialYear))
	} else {
		fmt.Fprintf(&b, "# Capital Gains up to %s\n\n", day(r.Window.To))
	}
	fmt.Fprint(&b, "Amounts in AUD at the rate of each trade date.\n\n")
	fmt.Fprintf(&b, "- **Net capital gain**: %s\n", r.NetGain.SignedString())
	fmt.Fprintf(&b, "- **Gains**: %s\n", r.TotalGains.SignedString())
	fmt.Fprintf(&b, "- **Losses**: %s\n", r.TotalLosses.SignedString())
	fmt.Fprintf(&b, "- **Long term** (%d days or more): %s\n", tradelots.LongTermDays, r.LongTermNet.SignedString())
	fmt.Fprintf(&b, "- **Short term**: %s\n\n", r.ShortTermNet.SignedString())

	if len(r.Records) == 0 {
		fmt.Fprint(&b, "No disposal in this period.\n")
		WarningsMarkdown(&b, r.Warnings)
		return b.String()
	}

	fmt.Fprintln(&b, "| Sold | Bought | Symbol | Quantity | Cost Basis | Proceeds | Gain | Days | Note |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|:---|")
	for _, rec := range r.Records {
		var notes []string
		if rec.Short {
			notes = append(notes, "short")
		}
		if rec.Expired {
			notes = append(notes, "expired")
		}
		if rec.IsLongTerm {
			notes = append(notes, "long term")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %d | %s |\n",
			day(rec.SellDate),
			day(rec.BuyDate),
			symbolLabel(rec.Symbol, rec.Option, false),
			rec.Quantity,
			rec.CostBasis,
			rec.Proceeds,
			rec.CapitalGain.SignedString(),
			rec.HoldingPeriodDays,
			strings.Join(notes, ", "),
		)
	}

	WarningsMarkdown(&b, r.Warnings)
	return b.String()
}

// YearsMarkdown lists the financial years with disposals.
func YearsMarkdown(years []int) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Financial Years\n\n")
	if len(years) == 0 {
		fmt.Fprint(&b, "No disposal yet.\n")
		return b.String()
	}
	for _, y := range years {
		r := date.FinancialYearRange(y)
		fmt.Fprintf(&b, "- **%s**: %s to %s (`-fy %d`)\n", date.FinancialYearLabel(y), r.From, r.To, y)
	}
	return b.String()
}
