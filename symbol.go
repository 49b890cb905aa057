package tradelots

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/etnz/tradelots/date"
	"github.com/shopspring/decimal"
)

// OptionType tells calls from puts.
type OptionType int

const (
	Call OptionType = iota + 1
	Put
)

func (o OptionType) String() string {
	switch o {
	case Call:
		return "Call"
	case Put:
		return "Put"
	default:
		return "unknown"
	}
}

// ContractMultiplier is the number of underlying shares in one option contract.
const ContractMultiplier = 100

// optionRE matches UNDERLYING + YYMMDD + C|P + STRIKE*1000, e.g. SOFI251121C26000.
var optionRE = regexp.MustCompile(`^([A-Z]+)(\d{6})([CP])(\d+)$`)

// OptionDescriptor is the decoded form of an option contract symbol.
type OptionDescriptor struct {
	Underlying string
	Expiry     date.Date
	Type       OptionType
	Strike     decimal.Decimal
}

// DecodeOption decodes an option contract symbol. It returns false for
// anything that does not fully match, which callers treat as a plain equity.
//
// The two-digit year is always read as 20YY.
func DecodeOption(symbol string) (OptionDescriptor, bool) {
	m := optionRE.FindStringSubmatch(symbol)
	if m == nil {
		return OptionDescriptor{}, false
	}
	yymmdd := m[2]
	yy, _ := strconv.Atoi(yymmdd[0:2])
	mm, _ := strconv.Atoi(yymmdd[2:4])
	dd, _ := strconv.Atoi(yymmdd[4:6])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return OptionDescriptor{}, false
	}
	strike, err := decimal.NewFromString(m[4])
	if err != nil {
		return OptionDescriptor{}, false
	}
	typ := Call
	if m[3] == "P" {
		typ = Put
	}
	return OptionDescriptor{
		Underlying: m[1],
		Expiry:     date.New(2000+yy, time.Month(mm), dd),
		Type:       typ,
		Strike:     strike.Shift(-3),
	}, true
}

// IsExpired reports whether the contract expired before today.
// It is always evaluated against the current date, never the trade date.
func (o OptionDescriptor) IsExpired(today date.Date) bool {
	return o.Expiry.Before(today)
}

// String returns a human label like "SOFI 2025-11-21 26C".
func (o OptionDescriptor) String() string {
	return fmt.Sprintf("%s %s %s%s", o.Underlying, o.Expiry, o.Strike.String(), o.Type.String()[:1])
}

// IsOption reports whether symbol decodes as an option contract.
func IsOption(symbol string) bool {
	_, ok := DecodeOption(symbol)
	return ok
}

// Multiplier returns the per-unit price scale for symbol: 100 for option
// contracts and 1 for equities.
func Multiplier(symbol string) Quantity {
	if IsOption(symbol) {
		return Q(ContractMultiplier)
	}
	return Q(1)
}
