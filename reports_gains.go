package tradelots

import (
	"slices"
	"time"

	"github.com/etnz/tradelots/date"
)

// LongTermDays is the holding period from which a gain is long term.
const LongTermDays = 365

// Window is an inclusive time interval. A zero bound is open.
type Window struct {
	From, To time.Time
}

// Contains reports whether t falls within the window.
func (w Window) Contains(t time.Time) bool {
	return (w.From.IsZero() || !t.Before(w.From)) && (w.To.IsZero() || !t.After(w.To))
}

// FinancialYearWindow returns the window of Australian financial year y:
// from y-07-01 to (y+1)-06-30, last millisecond included.
func FinancialYearWindow(y int) Window {
	return Window{
		From: time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(y+1, time.June, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC),
	}
}

// DefaultWindow is the window used when no financial year is requested.
//
// It ends with the last millisecond of the day of now, read in the zone of
// now, so an option that expired yesterday is in it whatever the clock zone.
func DefaultWindow(now time.Time) Window {
	end := date.Of(now).Add(1).Time().Add(-time.Millisecond)
	return Window{From: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), To: end}
}

// CapitalGainRecord is one FIFO matched portion of a disposal, in AUD.
type CapitalGainRecord struct {
	Symbol            string
	Name              string
	Option            *OptionDescriptor
	SellDate          time.Time // when the gain is realized
	BuyDate           time.Time // when the matched lot was opened
	Quantity          Quantity
	CostBasis         Money
	Proceeds          Money
	CapitalGain       Money
	HoldingPeriodDays int
	IsLongTerm        bool
	Short             bool // a short sale closed by a buy
	Expired           bool // closed by the synthetic expiry trade
}

// GainsReport lists the capital gain records of a window.
type GainsReport struct {
	FinancialYear int // 0 unless the report covers a financial year
	Window        Window
	Records       []CapitalGainRecord // most recent first
	NetGain       Money
	TotalGains    Money
	TotalLosses   Money
	LongTermNet   Money
	ShortTermNet  Money
	Warnings      []Warning
}

// audPricer values trades in AUD at the rate of their own trade day.
func audPricer(conv Converter, diag *diagnostics) Pricer {
	return func(t TradeEvent) (gross, commission, fees Money) {
		on := t.Day()
		return diag.convert(conv, t.Gross, AUD, t.Symbol, on),
			diag.convert(conv, t.Commission, AUD, t.Symbol, on),
			diag.convert(conv, t.Fees, AUD, t.Symbol, on)
	}
}

// holdingDays returns the number of whole days between two instants.
func holdingDays(from, to time.Time) int {
	return int(to.Sub(from) / date.Day)
}

func newCapitalGainRecord(ledger *SymbolLedger, m Match) CapitalGainRecord {
	days := holdingDays(m.OpenedAt(), m.ClosedAt())
	return CapitalGainRecord{
		Symbol:            m.Symbol,
		Name:              m.Close.Name,
		Option:            ledger.Option,
		SellDate:          m.ClosedAt(),
		BuyDate:           m.OpenedAt(),
		Quantity:          m.Quantity,
		CostBasis:         m.Cost,
		Proceeds:          m.Proceeds,
		CapitalGain:       m.Gain(),
		HoldingPeriodDays: days,
		IsLongTerm:        days >= LongTermDays,
		Short:             m.Short,
		Expired:           m.Close.Synthetic,
	}
}

// CapitalGains replays the full trade history in AUD and reports every
// matched portion closed within the window.
//
// Amounts are converted at the rate of each trade's own day. Trades outside
// the window still take part in the replay so that the cost basis of the
// portions inside it is right.
func CapitalGains(trades []TradeEvent, conv Converter, window Window, today date.Date) *GainsReport {
	var diag diagnostics
	report := &GainsReport{
		Window:       window,
		Records:      []CapitalGainRecord{},
		NetGain:      M(0, AUD),
		TotalGains:   M(0, AUD),
		TotalLosses:  M(0, AUD),
		LongTermNet:  M(0, AUD),
		ShortTermNet: M(0, AUD),
	}

	for _, ledger := range Replay(trades, audPricer(conv, &diag), today) {
		for _, m := range ledger.Matches {
			if !window.Contains(m.ClosedAt()) {
				continue
			}
			report.add(newCapitalGainRecord(&ledger, m))
		}
	}

	slices.SortStableFunc(report.Records, func(a, b CapitalGainRecord) int {
		return b.SellDate.Compare(a.SellDate)
	})
	report.Warnings = diag.warnings
	return report
}

func (r *GainsReport) add(rec CapitalGainRecord) {
	r.Records = append(r.Records, rec)
	gain := rec.CapitalGain.In(AUD)
	r.NetGain = r.NetGain.Add(gain)
	if gain.IsPositive() {
		r.TotalGains = r.TotalGains.Add(gain)
	} else {
		r.TotalLosses = r.TotalLosses.Add(gain)
	}
	if rec.IsLongTerm {
		r.LongTermNet = r.LongTermNet.Add(gain)
	} else {
		r.ShortTermNet = r.ShortTermNet.Add(gain)
	}
}

// FinancialYears returns the distinct financial years in which a disposal
// happened, most recent first: every close matched against a lot counts,
// short covers and synthetic expiry closes included. Trades with an
// unparsable date do not count.
func FinancialYears(trades []TradeEvent, today date.Date) []int {
	seen := make(map[int]bool)
	var years []int
	for _, ledger := range Replay(trades, OriginalPricer, today) {
		for _, m := range ledger.Matches {
			if m.ClosedAt().Equal(SentinelTime) {
				continue
			}
			fy := date.FinancialYearOf(m.Close.Day())
			if !seen[fy] {
				seen[fy] = true
				years = append(years, fy)
			}
		}
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}
