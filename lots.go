package tradelots

import (
	"time"
)

// Lot is an open holding of a symbol, long (positive quantity) or short
// (negative quantity).
//
// CostBasis has the sign of Quantity: it is what is left of the cost of a
// long lot, or of the proceeds of a short sale. CostPerUnit is fixed when the
// lot is opened and is always non-negative; matching works on CostBasis.
type Lot struct {
	Quantity    Quantity
	CostBasis   Money
	CostPerUnit Money
	Currency    string
	OpenedAt    time.Time
	Open        TradeEvent // trade that opened the lot
}

// IsShort reports whether the lot is a short position.
func (l Lot) IsShort() bool { return l.Quantity.IsNegative() }

// lots is a FIFO queue of open lots. All lots in the queue have the same
// sign: a buy closes short lots before opening long ones and a sell closes
// long lots before opening short ones.
type lots []Lot

// open appends a lot worth cost (unsigned) for a signed quantity.
func (l lots) open(t TradeEvent, quantity Quantity, cost Money) lots {
	unit := cost.Div(quantity.Abs())
	basis := cost
	if quantity.IsNegative() {
		basis = cost.Neg()
	}
	return append(l, Lot{
		Quantity:    quantity,
		CostBasis:   basis,
		CostPerUnit: unit,
		Currency:    cost.Currency(),
		OpenedAt:    t.Timestamp,
		Open:        t,
	})
}

// consume takes up to quantity (unsigned) from the head lots whose sign
// matches short, oldest first. It calls slice for every portion taken with
// the lot it came from, the portion size and its share of the remaining cost
// basis, and returns the remaining queue and the quantity it could not match.
//
// A lot taken whole yields exactly its remaining basis, so the portions of a
// lot always add up to its opening cost.
func (l lots) consume(quantity Quantity, short bool, slice func(from Lot, q Quantity, held Money)) (lots, Quantity) {
	for len(l) > 0 && quantity.IsPositive() && l[0].IsShort() == short {
		head := &l[0]
		size := head.Quantity.Abs()
		taken := quantity.Min(size)
		held := head.CostBasis.Abs()
		if taken.LessThan(size) {
			held = held.Mul(taken).Div(size)
		}
		slice(*head, taken, held)

		if short {
			head.Quantity = head.Quantity.Add(taken)
			head.CostBasis = head.CostBasis.Add(held)
		} else {
			head.Quantity = head.Quantity.Sub(taken)
			head.CostBasis = head.CostBasis.Sub(held)
		}
		quantity = quantity.Sub(taken)
		if head.Quantity.IsZero() {
			l = l[1:]
		}
	}
	return l, quantity
}

// position returns the signed sum of the lots quantities.
func (l lots) position() Quantity {
	var q Quantity
	for _, lot := range l {
		q = q.Add(lot.Quantity)
	}
	return q
}

// cost returns the sum of the absolute remaining cost basis.
func (l lots) cost(currency string) Money {
	total := M(0, currency)
	for _, lot := range l {
		total = total.Add(lot.CostBasis.Abs())
	}
	return total
}
