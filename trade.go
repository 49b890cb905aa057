package tradelots

import (
	"strings"
	"time"

	"github.com/etnz/tradelots/date"
)

// Side is the direction of a trade.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "unknown"
	}
}

// ParseSide recognizes broker side labels such as "Buy", "Sell" or "Sell Short".
func ParseSide(s string) (Side, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "buy"):
		return Buy, true
	case strings.HasPrefix(s, "sell"):
		return Sell, true
	default:
		return 0, false
	}
}

// SentinelTime is the timestamp given to trades whose time could not be parsed.
// Such trades sort before any real trade.
var SentinelTime = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// TradeEvent is one executed fill.
//
// Price, Gross, Commission and Fees are in the trade's original currency and
// Price is already multiplied by the contract multiplier for options.
// TradeEvent values are never modified once created.
type TradeEvent struct {
	Symbol     string
	Name       string
	Side       Side
	Quantity   Quantity // always >= 0
	Price      Money    // per unit (share or contract)
	Gross      Money    // Quantity × Price
	Commission Money
	Fees       Money
	Timestamp  time.Time // UTC
	Market     Market
	Synthetic  bool // generated by the engine at option expiry
}

// Currency returns the original currency of the trade.
func (t TradeEvent) Currency() string { return t.Market.Currency() }

// Day returns the UTC calendar day of the trade, used for rate lookups.
func (t TradeEvent) Day() date.Date { return date.Of(t.Timestamp.UTC()) }

// Net returns the cash amount of the trade net of costs: what a sell
// receives or, with the opposite sign convention, what a buy pays.
func (t TradeEvent) Net() Money {
	if t.Side == Buy {
		return t.Gross.Add(t.Commission).Add(t.Fees)
	}
	return t.Gross.Sub(t.Commission).Sub(t.Fees)
}

// Option returns the decoded option contract, if the symbol is one.
func (t TradeEvent) Option() (OptionDescriptor, bool) { return DecodeOption(t.Symbol) }
