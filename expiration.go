package pnl

import "github.com/qmartel/pnl/date"

// Expired positions settle at the end of the expiry day, so expirations
// sort after all real activity dated the same day.
const (
	expirationHour   = 23
	expirationMinute = 59
	expirationSecond = 59
)

// SyntheticExpirations builds one Expire trade for every match key that has
// at least one trade whose expiry is on or before asOf. The first trade seen
// per key seeds the instrument metadata; later trades sharing the key never
// re-trigger synthesis. Sequence numbers continue after the highest real
// sequence, assigned in first-seen key order so the result is deterministic.
//
// The returned trades carry quantity and price zero: applied to an empty
// bucket they are a no-op, otherwise they force the bucket closed.
func SyntheticExpirations(trades []Trade, asOf date.Date) []Trade {
	if len(trades) == 0 {
		return nil
	}
	var maxSeq int64
	for _, t := range trades {
		if t.Seq > maxSeq {
			maxSeq = t.Seq
		}
	}

	seen := make(map[string]Trade)
	var order []string
	for _, t := range trades {
		if t.Expiry.IsZero() || t.Expiry.After(asOf) {
			continue
		}
		if _, ok := seen[t.MatchKey]; ok {
			continue
		}
		seen[t.MatchKey] = t
		order = append(order, t.MatchKey)
	}

	expirations := make([]Trade, 0, len(order))
	seq := maxSeq
	for _, key := range order {
		t := seen[key]
		seq++
		expirations = append(expirations, Trade{
			Seq:        seq,
			Timestamp:  t.Expiry.At(expirationHour, expirationMinute, expirationSecond),
			Instrument: t.Instrument,
			MatchKey:   t.MatchKey,
			Asset:      t.Asset,
			OptionKind: t.OptionKind,
			Side:       Expire,
			Quantity:   Quantity{},
			Price:      Money{},
			Multiplier: t.Multiplier,
			Expiry:     t.Expiry,
		})
	}
	return expirations
}
