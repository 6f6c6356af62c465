package renderer

import (
	"strings"

	"github.com/qmartel/pnl"
	"github.com/qmartel/pnl/date"
)

// formatPrice renders a price with the precision of its asset class: two
// decimal places for stock, three for option premiums, trailing zeros
// trimmed either way.
func formatPrice(m pnl.Money, asset pnl.Asset) string {
	places := int32(2)
	if asset.IsOption() {
		places = 3
	}
	text := m.StringFixed(places)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text
}

// formatPnL renders a realized amount with an explicit sign.
func formatPnL(m pnl.Money) string {
	return m.SignedString()
}

// formatExpiry renders an expiry date, or a dash when the instrument has
// none.
func formatExpiry(d date.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Display()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
