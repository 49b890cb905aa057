package tradelots

import (
	"time"

	"github.com/etnz/tradelots/date"
	"github.com/shopspring/decimal"
)

// usd is a helper for test to create usd money from const
func usd(v float64) Money { return M(v, USD) }

// aud is a helper for test to create aud money from const
func aud(v float64) Money { return M(v, AUD) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) date.Date { return date.MustParse(s) }

// at parses a "2006-01-02 15:04:05" UTC timestamp.
func at(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t
}

// newTrade creates a US trade without costs. price is per share: it is
// scaled by the contract multiplier for options.
func newTrade(symbol string, side Side, qty, price float64, ts string) TradeEvent {
	unit := usd(price).Mul(Multiplier(symbol))
	q := Q(qty)
	return TradeEvent{
		Symbol:     symbol,
		Side:       side,
		Quantity:   q,
		Price:      unit,
		Gross:      unit.Mul(q),
		Commission: usd(0),
		Fees:       usd(0),
		Timestamp:  at(ts),
		Market:     US,
	}
}

// inAU moves a trade to the Australian market, keeping the amounts.
func inAU(t TradeEvent) TradeEvent {
	t.Market = AU
	t.Price, t.Gross = t.Price.In(AUD), t.Gross.In(AUD)
	t.Commission, t.Fees = t.Commission.In(AUD), t.Fees.In(AUD)
	return t
}

// withCosts sets the commission and fees of a trade, in its currency.
func withCosts(t TradeEvent, commission, fees float64) TradeEvent {
	t.Commission = M(commission, t.Currency())
	t.Fees = M(fees, t.Currency())
	return t
}

// fixedClock returns a clock stuck at ts.
func fixedClock(ts string) func() time.Time {
	now := at(ts)
	return func() time.Time { return now }
}
