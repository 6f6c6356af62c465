package pnl

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/qmartel/pnl/date"
	"github.com/shopspring/decimal"
)

// optionSymbolRe is the OCC-style grammar of Webull option symbols:
// uppercase root, YYMMDD expiry, C/P flag, 8-digit strike in thousandths.
var optionSymbolRe = regexp.MustCompile(`^([A-Z]+)(\d{6})([CP])(\d{8})$`)

// OptionSymbol is the decoded form of a single option contract symbol.
type OptionSymbol struct {
	Root   string
	Expiry date.Date
	Flag   string // "C" or "P"
	Strike Quantity
}

// Kind returns the option kind label for the contract.
func (o OptionSymbol) Kind() string {
	if o.Flag == "C" {
		return "Call"
	}
	return "Put"
}

// Display returns the human instrument name, e.g. "AAPL 19 Sep 2025 $190".
func (o OptionSymbol) Display() string {
	return fmt.Sprintf("%s %s $%s", o.Root, o.Expiry.Display(), o.Strike)
}

// ParseOptionSymbol decodes an option symbol. It reports false when the
// symbol does not follow the grammar; callers degrade to a generic option
// classification rather than rejecting the trade.
func ParseOptionSymbol(symbol string) (OptionSymbol, bool) {
	m := optionSymbolRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(symbol)))
	if m == nil {
		return OptionSymbol{}, false
	}
	expiry, err := time.Parse("060102", m[2])
	if err != nil {
		return OptionSymbol{}, false
	}
	raw, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return OptionSymbol{}, false
	}
	return OptionSymbol{
		Root:   m[1],
		Expiry: date.New(expiry.Date()),
		Flag:   m[3],
		Strike: Q(decimal.New(raw, -3)),
	}, true
}

// Leg is one constituent contract of a multi-leg strategy, reduced to the
// fields that matter for identity.
type Leg struct {
	Flag   string // "C" or "P"
	Strike Quantity
}

// StrategyKind infers the strategy family from a free-text order name.
// Substring checks run in a fixed priority order so that a name matching
// several families resolves deterministically ("iron condor" before
// "condor", both before "spread").
func StrategyKind(name string) string {
	lowered := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	switch {
	case strings.Contains(lowered, "ironcondor"):
		return "IronCondor"
	case strings.Contains(lowered, "condor"):
		return "Condor"
	case strings.Contains(lowered, "butterfly"):
		return "Butterfly"
	case strings.Contains(lowered, "straddle"):
		return "Straddle"
	case strings.Contains(lowered, "strangle"):
		return "Strangle"
	case strings.Contains(lowered, "spread"):
		return "Spread"
	default:
		return "Strategy"
	}
}

// StrategyKey builds the match key of a multi-leg strategy from its
// structural identity: kind, underlying root, expiry, and the leg list
// sorted by (flag, strike) so that leg ordering in the source never changes
// identity. Without root and expiry it degrades to a weaker, name-based key.
func StrategyKey(name, kind, root string, expiry date.Date, legs []Leg) string {
	if root == "" || expiry.IsZero() {
		return "strategy:" + name
	}
	key := fmt.Sprintf("strategy:%s:%s:%s", kind, root, expiry)
	if len(legs) == 0 {
		return key
	}
	sorted := slices.Clone(legs)
	slices.SortFunc(sorted, func(a, b Leg) int {
		if c := cmp.Compare(a.Flag, b.Flag); c != 0 {
			return c
		}
		return a.Strike.Cmp(b.Strike)
	})
	parts := make([]string, 0, len(sorted))
	for _, leg := range sorted {
		parts = append(parts, leg.Flag+leg.Strike.String())
	}
	return key + ":" + strings.Join(parts, ",")
}

// StrategyDisplay returns the instrument name of a strategy from whatever
// structural metadata is known, falling back to the raw order name.
func StrategyDisplay(name, root string, expiry date.Date) string {
	switch {
	case root != "" && !expiry.IsZero():
		return fmt.Sprintf("%s %s", root, expiry.Display())
	case root != "":
		return root
	case !expiry.IsZero():
		return fmt.Sprintf("%s %s", name, expiry.Display())
	default:
		return name
	}
}
