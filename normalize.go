package tradelots

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one raw row of a broker export, keyed by column header.
type Record map[string]string

// Get returns the trimmed value of a column, "" if absent.
func (r Record) Get(key string) string { return strings.TrimSpace(r[key]) }

// Column names of the broker export.
const (
	colSymbol     = "Symbol"
	colName       = "Name"
	colSide       = "Side"
	colStatus     = "Status"
	colFilled     = "Filled@Avg Price"
	colFillQty    = "Fill Qty"
	colFillPrice  = "Fill Price"
	colFillTime   = "Fill Time"
	colOrderTime  = "Order Time"
	colCommission = "Commission"
	colTotal      = "Total"
	colMarkets    = "Markets"
	colCurrency   = "Currency"
)

// feeColumns are summed when the export has no "Total" column.
var feeColumns = []string{
	"Platform Fees", "Platform Fee", "Options Regulatory Fees", "OCC Fees",
	"Settlement Fee", "Trading Activity Fee", "Trading Activity Fees",
}

// executedStatuses are the order statuses kept, compared case-insensitively.
var executedStatuses = []string{"filled", "partially cancelled"}

// IsExecuted reports whether the record is an executed fill worth keeping:
// it has a symbol, a side, and a Filled or Partially Cancelled status.
func IsExecuted(r Record) bool {
	if r.Get(colSymbol) == "" || r.Get(colSide) == "" {
		return false
	}
	return slices.Contains(executedStatuses, strings.ToLower(r.Get(colStatus)))
}

// Fixed offsets of the time-zone suffixes found in exports. They ignore
// daylight saving on purpose.
var zoneOffsets = map[string]*time.Location{
	"ET":   time.FixedZone("ET", -4*60*60),
	"EDT":  time.FixedZone("ET", -4*60*60),
	"EST":  time.FixedZone("ET", -4*60*60),
	"AEST": time.FixedZone("AET", 10*60*60),
	"AEDT": time.FixedZone("AET", 10*60*60),
}

var timestampLayouts = []string{
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// ParseTimestamp parses an export timestamp such as "Nov 21, 2025 09:30:00 ET".
//
// A trailing zone suffix is interpreted with a fixed offset (ET = UTC-4,
// AEST/AEDT = UTC+10); without suffix the time is taken as UTC. The result is
// in UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	loc := time.UTC
	if i := strings.LastIndexByte(s, ' '); i > 0 {
		if zone, ok := zoneOffsets[strings.ToUpper(s[i+1:])]; ok {
			loc = zone
			s = strings.TrimSpace(s[:i])
		}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseNumber parses a decimal with optional thousands separators.
// Blank is zero and valid; anything else unparsable is zero and invalid.
func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Normalizer turns raw records into trade events.
type Normalizer struct {
	// ASXTickers extends the built-in list of tickers recognized as Australian.
	ASXTickers []string
}

func (n Normalizer) isASX(symbol string) bool {
	return IsASXTicker(symbol) || slices.Contains(n.ASXTickers, strings.ToUpper(symbol))
}

// market resolves the market of a record: explicit market, then currency,
// then the ASX ticker list, then US.
func (n Normalizer) market(r Record) Market {
	if m := r.Get(colMarkets); m != "" {
		return ParseMarket(m)
	}
	if c := r.Get(colCurrency); c != "" {
		if strings.EqualFold(c, AUD) {
			return AU
		}
		return US
	}
	if n.isASX(r.Get(colSymbol)) {
		return AU
	}
	return US
}

// Normalize converts one record into a TradeEvent. It never fails: values
// that cannot be parsed become zero (or SentinelTime) and are reported as
// warnings.
func (n Normalizer) Normalize(r Record) (TradeEvent, []Warning) {
	var diag diagnostics
	symbol := strings.ToUpper(r.Get(colSymbol))
	market := n.market(r)
	cur := market.Currency()

	side, ok := ParseSide(r.Get(colSide))
	if !ok {
		diag.warnf(symbol, colSide, "unknown side %q", r.Get(colSide))
	}

	number := func(field, value string) decimal.Decimal {
		d, ok := parseNumber(value)
		if !ok {
			diag.warnf(symbol, field, "not a number %q, using 0", value)
		}
		return d
	}

	var qty, price decimal.Decimal
	if qtyStr, priceStr, found := strings.Cut(r.Get(colFilled), "@"); found {
		qty = number(colFilled, qtyStr)
		price = number(colFilled, priceStr)
	} else {
		qty = number(colFillQty, r.Get(colFillQty))
		price = number(colFillPrice, r.Get(colFillPrice))
	}
	if qty.IsNegative() {
		diag.warnf(symbol, colFilled, "negative quantity %s, using 0", qty)
		qty = decimal.Zero
	}
	if qty.IsZero() {
		diag.warnf(symbol, colFilled, "zero quantity")
	}

	commission := number(colCommission, r.Get(colCommission))
	var fees decimal.Decimal
	if total := r.Get(colTotal); total != "" {
		fees = number(colTotal, total)
	} else {
		for _, col := range feeColumns {
			fees = fees.Add(number(col, r.Get(col)))
		}
	}

	ts, ok := ParseTimestamp(r.Get(colFillTime))
	if !ok {
		ts, ok = ParseTimestamp(r.Get(colOrderTime))
	}
	if !ok {
		diag.warnf(symbol, colFillTime, "cannot parse time %q, using %s", r.Get(colFillTime), SentinelTime.Format(time.DateOnly))
		ts = SentinelTime
	}

	quantity := Q(qty)
	unit := M(price, cur).Mul(Multiplier(symbol))
	return TradeEvent{
		Symbol:     symbol,
		Name:       r.Get(colName),
		Side:       side,
		Quantity:   quantity,
		Price:      unit,
		Gross:      unit.Mul(quantity),
		Commission: M(commission, cur),
		Fees:       M(fees, cur),
		Timestamp:  ts,
		Market:     market,
	}, diag.warnings
}

// NormalizeAll keeps the executed records and normalizes them, in input order.
// Records with an unrecognized side are dropped.
func (n Normalizer) NormalizeAll(records []Record) ([]TradeEvent, []Warning) {
	var diag diagnostics
	trades := make([]TradeEvent, 0, len(records))
	for _, r := range records {
		if !IsExecuted(r) {
			continue
		}
		t, ws := n.Normalize(r)
		diag.add(ws...)
		if t.Side == 0 {
			continue
		}
		trades = append(trades, t)
	}
	return trades, diag.warnings
}
