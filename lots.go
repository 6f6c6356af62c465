package pnl

// Lot represents an unclosed slice of a position: a quantity acquired (or
// sold short) at a specific price. Quantity is always strictly positive;
// zero-quantity lots are never stored.
type Lot struct {
	Side     Side
	Quantity Quantity
	Price    Money
}

func (l Lot) Equal(o Lot) bool {
	return l.Side == o.Side && l.Quantity.Equal(o.Quantity) && l.Price.Equal(o.Price)
}

// Lots is the ordered ledger of one match-key bucket, oldest first. At rest
// all lots in a bucket share the same side: closing always drains every
// reachable opposite-side lot before a new same-side lot is appended.
type Lots []Lot

func (l Lots) Equal(o Lots) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// TotalQuantity sums the quantities of all lots.
func (l Lots) TotalQuantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// AveragePrice is the quantity-weighted average entry price of the lots.
// It must not be called on an empty bucket.
func (l Lots) AveragePrice() Money {
	var weighted Money
	for _, lot := range l {
		weighted = weighted.Add(lot.Price.Mul(lot.Quantity))
	}
	return weighted.Div(l.TotalQuantity())
}

// close matches a trade against the lots, consuming the oldest eligible
// opposite-side lots first (FIFO). Same-side lots are passed through
// untouched and keep their position in the order. Any unmatched remainder
// of the trade opens a new lot at the end of the bucket.
//
// It returns the updated lots, the realized P&L and the quantity closed.
func (l Lots) close(side Side, qty Quantity, price Money, multiplier Quantity) (Lots, Money, Quantity) {
	remaining := qty
	var realized Money
	var closedQty Quantity
	var updated Lots

	for _, lot := range l {
		if !remaining.IsPositive() || lot.Side == side {
			updated = append(updated, lot)
			continue
		}
		match := remaining.Min(lot.Quantity)
		// Buying back a short realizes lot.price - trade.price per unit;
		// selling a long realizes trade.price - lot.price.
		perUnit := lot.Price.Sub(price)
		if side == Sell {
			perUnit = price.Sub(lot.Price)
		}
		realized = realized.Add(perUnit.Mul(match).Mul(multiplier))
		closedQty = closedQty.Add(match)
		remaining = remaining.Sub(match)
		leftover := lot.Quantity.Sub(match)
		if leftover.IsPositive() {
			updated = append(updated, Lot{Side: lot.Side, Quantity: leftover, Price: lot.Price})
		}
	}

	if remaining.IsPositive() {
		updated = append(updated, Lot{Side: side, Quantity: remaining, Price: price})
	}
	return updated, realized, closedQty
}

// expire closes every lot in the bucket at price zero, whatever its side.
// A long lot realizes a loss equal to its entry cost; a short lot realizes
// a gain equal to its entry proceeds.
func (l Lots) expire(multiplier Quantity) (Lots, Money, Quantity) {
	if len(l) == 0 {
		return nil, Money{}, Quantity{}
	}
	var realized Money
	var closedQty Quantity
	for _, lot := range l {
		entry := lot.Price.Mul(lot.Quantity).Mul(multiplier)
		if lot.Side == Buy {
			realized = realized.Sub(entry)
		} else {
			realized = realized.Add(entry)
		}
		closedQty = closedQty.Add(lot.Quantity)
	}
	return nil, realized, closedQty
}
