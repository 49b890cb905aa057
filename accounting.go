package tradelots

import (
	"slices"
	"time"

	"github.com/etnz/tradelots/date"
)

// AccountingSystem holds a loaded trade history and its rate table, and
// computes every report from them.
//
// It has no mutable state: each report is recomputed from scratch, so the
// methods are safe for concurrent use and return identical results for
// identical inputs.
type AccountingSystem struct {
	trades   []TradeEvent
	rates    *Rates
	now      func() time.Time
	warnings []Warning
}

// Option configures an AccountingSystem.
type Option func(*AccountingSystem)

// WithClock sets the clock used for "now" (expiry status, default windows,
// timeframes and today's rate).
func WithClock(now func() time.Time) Option {
	return func(as *AccountingSystem) { as.now = now }
}

// WithWarnings attaches warnings produced while loading the trades.
func WithWarnings(ws []Warning) Option {
	return func(as *AccountingSystem) { as.warnings = slices.Clone(ws) }
}

// NewAccountingSystem creates an accounting system over trades and rates.
// A nil rates table behaves like an empty one.
func NewAccountingSystem(trades []TradeEvent, rates *Rates, opts ...Option) *AccountingSystem {
	if rates == nil {
		rates = NewRates()
	}
	as := &AccountingSystem{
		trades: slices.Clone(trades),
		rates:  rates,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(as)
	}
	return as
}

func (as *AccountingSystem) today() date.Date { return date.Of(as.now()) }

func (as *AccountingSystem) converter() Converter { return NewConverter(as.rates) }

// Trades returns a copy of the loaded trades.
func (as *AccountingSystem) Trades() []TradeEvent { return slices.Clone(as.trades) }

// Rates returns the rate table.
func (as *AccountingSystem) Rates() *Rates { return as.rates }

// LoadWarnings returns the warnings produced while loading the trades.
func (as *AccountingSystem) LoadWarnings() []Warning { return slices.Clone(as.warnings) }

// PortfolioSummary returns the per-symbol P&L and current positions in the
// display currency, at today's rate.
func (as *AccountingSystem) PortfolioSummary(display string) *PortfolioSummary {
	return Summarize(as.trades, as.converter(), display, as.today())
}

// CapitalGains returns the AUD capital gain records of a financial year, or
// of [2000-01-01, now] when financialYear is nil.
func (as *AccountingSystem) CapitalGains(financialYear *int) *GainsReport {
	window := DefaultWindow(as.now())
	if financialYear != nil {
		window = FinancialYearWindow(*financialYear)
	}
	report := CapitalGains(as.trades, as.converter(), window, as.today())
	if financialYear != nil {
		report.FinancialYear = *financialYear
	}
	return report
}

// FinancialYears returns the financial years with at least one disposal, most
// recent first.
func (as *AccountingSystem) FinancialYears() []int {
	return FinancialYears(as.trades, as.today())
}

// PerformanceSeries returns the realized P&L bucketed over a timeframe in the
// display currency.
func (as *AccountingSystem) PerformanceSeries(tf Timeframe, display string) *PerformanceSeries {
	today := as.today()
	gains := CapitalGains(as.trades, as.converter(), Window{}, today)
	series := Performance(gains.Records, as.converter(), tf, display, today)
	series.Warnings = append(gains.Warnings, series.Warnings...)
	return series
}

// SymbolLedger replays a single symbol in the display currency at today's
// rate, exposing its open lots and matches.
func (as *AccountingSystem) SymbolLedger(symbol, display string) (SymbolLedger, []Warning, bool) {
	var trades []TradeEvent
	for _, t := range as.trades {
		if t.Symbol == symbol {
			trades = append(trades, t)
		}
	}
	if len(trades) == 0 {
		return SymbolLedger{}, nil, false
	}
	var diag diagnostics
	today := as.today()
	ledger := ReplayFIFO(symbol, trades, todayPricer(as.converter(), CurrencyOf(display), today, &diag), today)
	return ledger, diag.warnings, true
}

// OpenLots returns the lots of a symbol still open today, oldest first,
// valued in the display currency.
func (as *AccountingSystem) OpenLots(symbol, display string) []Lot {
	ledger, _, _ := as.SymbolLedger(symbol, display)
	return ledger.Lots
}
