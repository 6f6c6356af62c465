package pnl

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/qmartel/pnl/date"
)

// Side is the direction of a trade or of an open lot.
type Side int

const (
	// Buy opens or extends a long position, or closes a short one.
	Buy Side = iota
	// Sell opens or extends a short position, or closes a long one.
	Sell
	// Expire is a synthetic side forcing full closure of a bucket at price
	// zero when the instrument's expiry has passed.
	Expire
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	case Expire:
		return "Expire"
	default:
		return "unknown"
	}
}

// ParseSide parses a buy/sell direction, ignoring case and surrounding
// whitespace. Expire is never present in source data and does not parse.
func ParseSide(s string) (Side, error) {
	switch v := strings.TrimSpace(s); {
	case strings.EqualFold(v, "buy"):
		return Buy, nil
	case strings.EqualFold(v, "sell"):
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown side: %q", s)
	}
}

// Asset is the class of instrument a trade is in.
type Asset int

const (
	Stock Asset = iota
	Option
	OptionStrategy
)

func (a Asset) String() string {
	switch a {
	case Stock:
		return "Stock"
	case Option:
		return "Option"
	case OptionStrategy:
		return "Option Strategy"
	default:
		return "unknown"
	}
}

// IsOption reports whether the asset carries the option contract multiplier.
func (a Asset) IsOption() bool { return a == Option || a == OptionStrategy }

// Multiplier returns the per-unit contract size for the asset class.
func (a Asset) Multiplier() Quantity {
	if a.IsOption() {
		return Q(100)
	}
	return Q(1)
}

// Trade is one normalized fill. Trades are created once, during
// normalization or expiration synthesis, and never mutated.
type Trade struct {
	// Seq is strictly increasing across the whole input in
	// file-then-row order. It is the sole tie-breaker between trades
	// sharing an identical timestamp.
	Seq        int64
	Timestamp  time.Time
	Instrument string // display name
	// MatchKey identifies the fungible position bucket this trade nets
	// against: "stock:<symbol>", "option:<symbol>", or a strategy key.
	MatchKey   string
	Asset      Asset
	OptionKind string // "Call", "Put", a strategy label, or ""
	Side       Side
	Quantity   Quantity // > 0 for real trades, 0 for a synthetic Expire
	Price      Money
	Multiplier Quantity
	Expiry     date.Date // zero when the instrument has no expiry
}

// SortTrades orders trades chronologically, breaking timestamp ties with the
// sequence number so replay is globally stable.
func SortTrades(trades []Trade) {
	slices.SortFunc(trades, func(a, b Trade) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
}
