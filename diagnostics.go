package tradelots

import (
	"fmt"

	"github.com/etnz/tradelots/date"
)

// Warning is a non-fatal note about degraded input or a degraded computation.
// Warnings never change the computed numbers; they only explain them.
type Warning struct {
	Symbol  string
	Field   string
	Message string
}

func (w Warning) String() string {
	switch {
	case w.Symbol != "" && w.Field != "":
		return fmt.Sprintf("%s: %s: %s", w.Symbol, w.Field, w.Message)
	case w.Symbol != "":
		return fmt.Sprintf("%s: %s", w.Symbol, w.Message)
	default:
		return w.Message
	}
}

// diagnostics collects warnings during a single computation.
type diagnostics struct {
	warnings  []Warning
	fallbacks map[date.Date]bool // days already reported as using the fallback rate
}

func (d *diagnostics) warnf(symbol, field, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{Symbol: symbol, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (d *diagnostics) add(ws ...Warning) {
	d.warnings = append(d.warnings, ws...)
}

// convert converts m with c and records a warning when the pair is
// unsupported or when a day has no rate close enough.
func (d *diagnostics) convert(c Converter, m Money, to, symbol string, on date.Date) Money {
	out, ok := c.convertMoney(m, to, on)
	if !ok {
		d.warnf(symbol, "currency", "cannot convert %q to %q on %s, amount kept unchanged", m.cur, to, on)
		return out
	}
	if CurrencyOf(m.cur) == CurrencyOf(to) {
		return out
	}
	if rate, src := c.Rates.Lookup(on); src == RateFallback && !d.fallbacks[on] {
		if d.fallbacks == nil {
			d.fallbacks = make(map[date.Date]bool)
		}
		d.fallbacks[on] = true
		d.warnf(symbol, "rate", "no USD/AUD rate within %d days of %s, using fallback %s", NearestRateWindow, on, rate)
	}
	return out
}
