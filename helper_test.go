package pnl

import (
	"time"

	"github.com/qmartel/pnl/date"
)

// ts is a helper for tests to build a timestamp from a constant.
func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// stockTrade is a helper for tests to build a normalized stock fill.
func stockTrade(seq int64, at, symbol string, side Side, qty, price float64) Trade {
	return Trade{
		Seq:        seq,
		Timestamp:  ts(at),
		Instrument: symbol,
		MatchKey:   "stock:" + symbol,
		Asset:      Stock,
		Side:       side,
		Quantity:   Q(qty),
		Price:      M(price),
		Multiplier: Q(1),
	}
}

// optionTrade is a helper for tests to build a normalized single-option fill.
func optionTrade(seq int64, at, symbol string, side Side, qty, price float64, expiry date.Date) Trade {
	sym, _ := ParseOptionSymbol(symbol)
	return Trade{
		Seq:        seq,
		Timestamp:  ts(at),
		Instrument: sym.Display(),
		MatchKey:   "option:" + symbol,
		Asset:      Option,
		OptionKind: sym.Kind(),
		Side:       side,
		Quantity:   Q(qty),
		Price:      M(price),
		Multiplier: Q(100),
		Expiry:     expiry,
	}
}
