package pnl

import "maps"

// Positions maps a match key to the ordered lot ledger of its bucket.
// Empty buckets are never stored: a key is removed as soon as its last lot
// closes.
//
// Positions is threaded through replay copy-on-write: Apply never mutates
// its receiver, it returns either the same value (no lot content changed)
// or a fresh map with the affected bucket replaced.
type Positions map[string]Lots

// Apply replays one trade against the positions and returns the updated
// positions, the realized P&L of the trade and the quantity it closed.
//
// An Expire trade empties its bucket at price zero. A Buy/Sell trade closes
// the oldest opposite-side lots first and opens a new lot with any
// unmatched remainder.
func (p Positions) Apply(t Trade) (Positions, Money, Quantity) {
	lots := p[t.MatchKey]

	var updated Lots
	var realized Money
	var closedQty Quantity
	if t.Side == Expire {
		updated, realized, closedQty = lots.expire(t.Multiplier)
	} else {
		updated, realized, closedQty = lots.close(t.Side, t.Quantity, t.Price, t.Multiplier)
	}

	if updated.Equal(lots) {
		// Same value back: callers rely on this for cheap no-op detection.
		return p, realized, closedQty
	}

	next := maps.Clone(p)
	if next == nil {
		next = make(Positions, 1)
	}
	if len(updated) > 0 {
		next[t.MatchKey] = updated
	} else {
		delete(next, t.MatchKey)
	}
	return next, realized, closedQty
}
