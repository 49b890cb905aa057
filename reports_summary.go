package tradelots

import (
	"cmp"
	"slices"

	"github.com/etnz/tradelots/date"
)

// MinPositionQuantity is the smallest absolute net position listed as a
// current position.
var MinPositionQuantity = Q(0.1)

// SymbolPnLSummary is the per-symbol view of the portfolio in a display currency.
type SymbolPnLSummary struct {
	Symbol       string
	Name         string
	Market       Market
	Option       *OptionDescriptor
	Expired      bool
	NetPosition  Quantity
	TotalCost    Money // cost basis of the open lots
	AverageCost  Money // average cost of a long position
	RealizedPnL  Money
	BuyQuantity  Quantity
	SellQuantity Quantity
	BuyVolume    Money
	SellVolume   Money
	TotalVolume  Money
	Trades       []TradeEvent
	Lots         []Lot
}

// IsCurrent reports whether the symbol is still held: a non-negligible net
// position that is not an expired option.
func (s SymbolPnLSummary) IsCurrent() bool {
	if s.NetPosition.Abs().LessThan(MinPositionQuantity) {
		return false
	}
	return !(s.Option != nil && s.Expired)
}

// PortfolioSummary is the whole portfolio in a display currency.
type PortfolioSummary struct {
	Currency        string
	AsOf            date.Date
	Symbols         []SymbolPnLSummary // by descending total volume
	Positions       []SymbolPnLSummary // current positions, by descending total volume
	TotalRealized   Money
	TotalBuyVolume  Money
	TotalSellVolume Money
	OpenCost        Money // cost basis of the current positions
	Warnings        []Warning
}

// todayPricer values trades in display currency at the rate of today,
// whatever the trade date.
func todayPricer(conv Converter, display string, today date.Date, diag *diagnostics) Pricer {
	return func(t TradeEvent) (gross, commission, fees Money) {
		return diag.convert(conv, t.Gross, display, t.Symbol, today),
			diag.convert(conv, t.Commission, display, t.Symbol, today),
			diag.convert(conv, t.Fees, display, t.Symbol, today)
	}
}

// sumVolume converts volumes kept per original currency and adds them up.
func sumVolume(diag *diagnostics, conv Converter, volumes map[string]Money, display, symbol string, today date.Date) Money {
	total := M(0, display)
	currencies := make([]string, 0, len(volumes))
	for cur := range volumes {
		currencies = append(currencies, cur)
	}
	slices.Sort(currencies)
	for _, cur := range currencies {
		total = total.Add(diag.convert(conv, volumes[cur], display, symbol, today))
	}
	return total
}

// Summarize computes the per-symbol P&L of the portfolio in the display
// currency. Every amount is converted at today's rate, not at the trade
// date rate: the summary tells what the history is worth today.
func Summarize(trades []TradeEvent, conv Converter, display string, today date.Date) *PortfolioSummary {
	var diag diagnostics
	cur := CurrencyOf(display)
	if cur == "" {
		diag.warnf("", "currency", "unsupported display currency %q, amounts are not converted", display)
		cur = display
	}

	summary := &PortfolioSummary{
		Currency:        cur,
		AsOf:            today,
		Symbols:         []SymbolPnLSummary{},
		Positions:       []SymbolPnLSummary{},
		TotalRealized:   M(0, cur),
		TotalBuyVolume:  M(0, cur),
		TotalSellVolume: M(0, cur),
		OpenCost:        M(0, cur),
	}

	for _, l := range Replay(trades, todayPricer(conv, cur, today, &diag), today) {
		s := SymbolPnLSummary{
			Symbol:       l.Symbol,
			Option:       l.Option,
			Expired:      l.Expired,
			NetPosition:  l.NetPosition,
			TotalCost:    l.TotalCost.In(cur),
			AverageCost:  l.AverageCost.In(cur),
			RealizedPnL:  l.Realized.In(cur),
			BuyQuantity:  l.BuyQuantity,
			SellQuantity: l.SellQuantity,
			BuyVolume:    sumVolume(&diag, conv, l.BuyVolume, cur, l.Symbol, today),
			SellVolume:   sumVolume(&diag, conv, l.SellVolume, cur, l.Symbol, today),
			Trades:       l.Trades,
			Lots:         l.Lots,
		}
		if len(l.Trades) > 0 {
			first := l.Trades[0]
			s.Name, s.Market = first.Name, first.Market
		}
		s.TotalVolume = s.BuyVolume.Add(s.SellVolume)

		summary.Symbols = append(summary.Symbols, s)
		summary.TotalRealized = summary.TotalRealized.Add(s.RealizedPnL)
		summary.TotalBuyVolume = summary.TotalBuyVolume.Add(s.BuyVolume)
		summary.TotalSellVolume = summary.TotalSellVolume.Add(s.SellVolume)
		if s.IsCurrent() {
			summary.Positions = append(summary.Positions, s)
			summary.OpenCost = summary.OpenCost.Add(s.TotalCost)
		}
	}

	byVolume := func(a, b SymbolPnLSummary) int {
		return cmp.Or(b.TotalVolume.Decimal().Cmp(a.TotalVolume.Decimal()), cmp.Compare(a.Symbol, b.Symbol))
	}
	slices.SortFunc(summary.Symbols, byVolume)
	slices.SortFunc(summary.Positions, byVolume)
	summary.Warnings = diag.warnings
	return summary
}
