package tradelots

import (
	"cmp"
	"slices"
	"time"

	"github.com/etnz/tradelots/date"
)

// expiryTolerance absorbs floating point drift in the quantities of broker
// exports when deciding if an expired option still has an open position.
// It is not a business threshold.
var expiryTolerance = Q(0.01)

// Pricer values a trade in the currency of a FIFO run. It returns the gross
// amount, the commission and the fees of the trade.
type Pricer func(t TradeEvent) (gross, commission, fees Money)

// OriginalPricer values trades in their own currency.
func OriginalPricer(t TradeEvent) (gross, commission, fees Money) {
	return t.Gross, t.Commission, t.Fees
}

// Match is a portion of a closing trade matched against one open lot.
type Match struct {
	Symbol   string
	Open     TradeEvent // trade that opened the lot
	Close    TradeEvent // trade that closed this portion
	Quantity Quantity   // unsigned size of the portion
	Short    bool       // the lot was a short sale closed by a buy
	Cost     Money      // what was paid for the portion
	Proceeds Money      // what was received for the portion
}

// Gain returns the realized gain of the portion.
func (m Match) Gain() Money { return m.Proceeds.Sub(m.Cost) }

// OpenedAt returns when the matched lot was opened.
func (m Match) OpenedAt() time.Time { return m.Open.Timestamp }

// ClosedAt returns when the portion was closed, i.e. when the gain is realized.
func (m Match) ClosedAt() time.Time { return m.Close.Timestamp }

// SymbolLedger is the result of replaying the whole trade history of a symbol.
type SymbolLedger struct {
	Symbol      string
	Currency    string       // currency of the cost and gain amounts
	Trades      []TradeEvent // replayed trades in order, synthetic ones included
	Lots        []Lot        // lots still open, oldest first
	Matches     []Match      // every matched portion, in replay order
	NetPosition Quantity     // signed sum of the open lots
	TotalCost   Money        // sum of the absolute cost basis of the open lots
	AverageCost Money        // TotalCost / NetPosition, zero unless long
	Realized    Money        // sum of the gains of all matches
	Expired     bool         // option contract expired
	Option      *OptionDescriptor

	// Real trades only, in their original currency.
	BuyQuantity  Quantity
	SellQuantity Quantity
	BuyVolume    map[string]Money
	SellVolume   map[string]Money
}

// sortTrades returns a copy of trades in ascending timestamp order; ties keep
// their input order.
func sortTrades(trades []TradeEvent) []TradeEvent {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b TradeEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// netQuantity returns bought minus sold quantities.
func netQuantity(trades []TradeEvent) Quantity {
	var net Quantity
	for _, t := range trades {
		switch t.Side {
		case Buy:
			net = net.Add(t.Quantity)
		case Sell:
			net = net.Sub(t.Quantity)
		}
	}
	return net
}

// expiryClose returns the synthetic trade closing what is left of an expired
// option at zero price: a sell for a long position, a buy for a written one.
func expiryClose(symbol string, opt OptionDescriptor, trades []TradeEvent) (TradeEvent, bool) {
	net := netQuantity(trades)
	var side Side
	switch {
	case net.GreaterThan(expiryTolerance):
		side = Sell
	case net.LessThan(expiryTolerance.Neg()):
		side = Buy
	default:
		return TradeEvent{}, false
	}
	market := US
	name := ""
	if len(trades) > 0 {
		last := trades[len(trades)-1]
		market, name = last.Market, last.Name
	}
	cur := market.Currency()
	return TradeEvent{
		Symbol:     symbol,
		Name:       name,
		Side:       side,
		Quantity:   net.Abs(),
		Price:      M(0, cur),
		Gross:      M(0, cur),
		Commission: M(0, cur),
		Fees:       M(0, cur),
		// End of the expiry day, after any real trade of that day.
		Timestamp: opt.Expiry.Time().Add(date.Day - time.Second),
		Market:    market,
		Synthetic: true,
	}, true
}

// withExpiry returns the trades of a symbol in replay order, with the
// synthetic expiry close appended when the option expired with an open position.
func withExpiry(symbol string, trades []TradeEvent, today date.Date) ([]TradeEvent, *OptionDescriptor, bool) {
	sorted := sortTrades(trades)
	opt, ok := DecodeOption(symbol)
	if !ok {
		return sorted, nil, false
	}
	expired := opt.IsExpired(today)
	if expired {
		if t, ok := expiryClose(symbol, opt, sorted); ok {
			sorted = sortTrades(append(sorted, t))
		}
	}
	return sorted, &opt, expired
}

// ReplayFIFO replays the whole history of one symbol through a FIFO lot queue.
//
// Amounts are valued with price, so the same replay serves any reporting
// currency. Buys first close short lots then open a long lot for the rest;
// sells first close long lots then open a short lot for the rest. An expired
// option with an open position is closed at zero on its expiry day.
//
// ReplayFIFO never fails: degenerate trades (zero quantity or price) produce
// zero-valued lots or matches.
func ReplayFIFO(symbol string, trades []TradeEvent, price Pricer, today date.Date) SymbolLedger {
	replay, opt, expired := withExpiry(symbol, trades, today)

	ledger := SymbolLedger{
		Symbol:     symbol,
		Trades:     replay,
		Option:     opt,
		Expired:    expired,
		BuyVolume:  make(map[string]Money),
		SellVolume: make(map[string]Money),
	}

	var queue lots
	var currency string
	for _, t := range replay {
		gross, commission, fees := price(t)
		currency = cmp.Or(gross.Currency(), currency)

		if !t.Synthetic {
			cur := t.Currency()
			switch t.Side {
			case Buy:
				ledger.BuyQuantity = ledger.BuyQuantity.Add(t.Quantity)
				ledger.BuyVolume[cur] = ledger.BuyVolume[cur].Add(t.Gross)
			case Sell:
				ledger.SellQuantity = ledger.SellQuantity.Add(t.Quantity)
				ledger.SellVolume[cur] = ledger.SellVolume[cur].Add(t.Gross)
			}
		}
		if !t.Quantity.IsPositive() {
			continue
		}

		var net Money
		var closesShort bool
		switch t.Side {
		case Buy:
			net, closesShort = gross.Add(commission).Add(fees), true
		case Sell:
			net, closesShort = gross.Sub(commission).Sub(fees), false
		default:
			continue
		}

		// The last portion of the trade takes what is left of net, so the
		// portions add up to it exactly.
		left, unmatched := net, t.Quantity
		var rest Quantity
		queue, rest = queue.consume(t.Quantity, closesShort, func(from Lot, q Quantity, held Money) {
			share := left
			if q.LessThan(unmatched) {
				share = net.Mul(q).Div(t.Quantity)
			}
			left, unmatched = left.Sub(share), unmatched.Sub(q)
			m := Match{Symbol: symbol, Open: from.Open, Close: t, Quantity: q, Short: closesShort}
			if closesShort {
				m.Cost, m.Proceeds = share, held
			} else {
				m.Cost, m.Proceeds = held, share
			}
			ledger.Matches = append(ledger.Matches, m)
			ledger.Realized = ledger.Realized.Add(m.Gain())
		})

		if rest.IsPositive() {
			if t.Side == Sell {
				rest = rest.Neg()
			}
			queue = queue.open(t, rest, left)
		}
	}

	ledger.Currency = currency
	ledger.Realized = ledger.Realized.In(currency)
	ledger.Lots = slices.Clone(queue)
	ledger.NetPosition = queue.position()
	ledger.TotalCost = queue.cost(currency)
	ledger.AverageCost = M(0, currency)
	if ledger.NetPosition.IsPositive() {
		ledger.AverageCost = ledger.TotalCost.Div(ledger.NetPosition)
	}
	return ledger
}

// groupBySymbol splits trades per symbol, keeping their relative order, and
// returns the symbols sorted alphabetically.
func groupBySymbol(trades []TradeEvent) ([]string, map[string][]TradeEvent) {
	bySymbol := make(map[string][]TradeEvent)
	for _, t := range trades {
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}
	symbols := make([]string, 0, len(bySymbol))
	for s := range bySymbol {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols, bySymbol
}

// Replay runs ReplayFIFO for every symbol in trades, in symbol order.
func Replay(trades []TradeEvent, price Pricer, today date.Date) []SymbolLedger {
	symbols, bySymbol := groupBySymbol(trades)
	ledgers := make([]SymbolLedger, 0, len(symbols))
	for _, s := range symbols {
		ledgers = append(ledgers, ReplayFIFO(s, bySymbol[s], price, today))
	}
	return ledgers
}
