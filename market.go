package tradelots

import (
	"slices"
	"strings"
)

// Market is the exchange a trade was executed on.
type Market string

const (
	US Market = "US"
	AU Market = "AU"
)

// Supported currency codes.
const (
	USD = "USD"
	AUD = "AUD"
)

// Currency returns the trading currency of the market, or "" if unknown.
func (m Market) Currency() string {
	switch m {
	case US:
		return USD
	case AU:
		return AUD
	default:
		return ""
	}
}

// ParseMarket normalizes a market code. Unknown non-blank codes are kept
// upper-cased so that they degrade to an unsupported currency later on.
func ParseMarket(s string) Market {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "AU", "ASX":
		return AU
	default:
		return Market(s)
	}
}

// CurrencyOf maps a currency or market code to a supported currency code.
// It returns "" for anything it does not know.
func CurrencyOf(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "US", USD:
		return USD
	case "AU", "ASX", AUD:
		return AUD
	default:
		return ""
	}
}

// asxTickers is the fixed list of Australian tickers recognized when a record
// carries neither a market nor a currency.
var asxTickers = []string{
	"CBA", "BHP", "CSL", "WBC", "ANZ", "NAB", "WES", "MQG", "RIO", "TLS",
	"COL", "TCL", "WOW", "FMG", "SYD", "REA", "QBE", "IAG", "AMP", "ORG",
	"WPL", "ALL", "GMG", "JHX", "CPU", "XRO", "APT", "ZIP", "LYC",
}

// IsASXTicker reports whether symbol is one of the known Australian tickers.
func IsASXTicker(symbol string) bool {
	return slices.Contains(asxTickers, strings.ToUpper(symbol))
}
