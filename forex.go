package tradelots

import (
	"github.com/etnz/tradelots/date"
	"github.com/shopspring/decimal"
)

// FallbackRate is the USD→AUD rate used when no rate is known within
// NearestRateWindow days of the requested date. It is a policy default, not a
// computed value.
var FallbackRate = decimal.RequireFromString("1.5")

// NearestRateWindow is the number of days searched on each side of a date
// without an exact rate.
const NearestRateWindow = 7

// RateSource tells how a rate was resolved.
type RateSource int

const (
	RateExact RateSource = iota
	RateNearest
	RateFallback
)

func (s RateSource) String() string {
	switch s {
	case RateExact:
		return "exact"
	case RateNearest:
		return "nearest"
	default:
		return "fallback"
	}
}

// Rates is a table of daily USD→AUD exchange rates (AUD per 1 USD).
//
// It is filled once by a rate provider and must be treated as read-only
// afterwards; lookups never mutate it, so a loaded table can be shared by any
// number of concurrent report computations.
type Rates struct {
	history  date.History[decimal.Decimal]
	fallback decimal.Decimal
}

// NewRates returns an empty table using FallbackRate.
func NewRates() *Rates {
	return &Rates{fallback: FallbackRate}
}

// WithFallback changes the rate returned when no rate is close enough.
func (r *Rates) WithFallback(rate decimal.Decimal) *Rates {
	r.fallback = rate
	return r
}

// Set records the rate for a day. Setting the same day twice keeps the last value.
func (r *Rates) Set(on date.Date, rate decimal.Decimal) *Rates {
	r.history.Append(on, rate)
	return r
}

// Len returns the number of days with a known rate.
func (r *Rates) Len() int {
	if r == nil {
		return 0
	}
	return r.history.Len()
}

// Lookup resolves the rate for a day and tells how it was found.
func (r *Rates) Lookup(on date.Date) (decimal.Decimal, RateSource) {
	if r == nil {
		return FallbackRate, RateFallback
	}
	rate, day, ok := r.history.Nearest(on, NearestRateWindow)
	switch {
	case !ok:
		return r.fallback, RateFallback
	case day == on:
		return rate, RateExact
	default:
		return rate, RateNearest
	}
}

// Rate returns the USD→AUD rate for a day: the exact rate, else the closest
// within NearestRateWindow days, else the fallback rate.
func (r *Rates) Rate(on date.Date) decimal.Decimal {
	rate, _ := r.Lookup(on)
	return rate
}

// Converter converts amounts between USD and AUD with a rate table.
type Converter struct {
	Rates *Rates
}

// NewConverter returns a Converter reading rates from r.
func NewConverter(r *Rates) Converter { return Converter{Rates: r} }

// Convert converts amount from a currency (or market code) to another on a
// given day. Codes are mapped with CurrencyOf.
//
// Only USD↔AUD is supported. Any other pair returns amount unchanged and
// false: the caller decides whether to report it, the numbers stay untouched.
func (c Converter) Convert(amount decimal.Decimal, from, to string, on date.Date) (decimal.Decimal, bool) {
	src, dst := CurrencyOf(from), CurrencyOf(to)
	switch {
	case src == "" || dst == "":
		return amount, false
	case src == dst:
		return amount, true
	case src == USD && dst == AUD:
		return amount.Mul(c.Rates.Rate(on)), true
	case src == AUD && dst == USD:
		rate := c.Rates.Rate(on)
		if rate.IsZero() {
			return amount, false
		}
		return amount.Div(rate), true
	default:
		return amount, false
	}
}

// convertMoney is Convert on Money values; the result is tagged with the target currency.
func (c Converter) convertMoney(m Money, to string, on date.Date) (Money, bool) {
	v, ok := c.Convert(m.value, m.cur, to, on)
	return Money{value: v, cur: CurrencyOf(to)}, ok
}
