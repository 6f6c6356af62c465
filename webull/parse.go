package webull

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// fillTimeFormat is the timestamp format of Webull exports. The permissive
// month/day accept both "9/5/2025" and "09/05/2025".
const fillTimeFormat = "1/2/2006 15:04:05"

// parseTime parses a Webull timestamp, stripping an optional trailing
// timezone token ("09/19/2025 09:30:00 EDT"). It reports false when the
// value is empty or malformed.
func parseTime(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	parts := strings.Fields(text)
	if last := parts[len(parts)-1]; isAlpha(last) && len(last) <= 4 {
		parts = parts[:len(parts)-1]
	}
	t, err := time.Parse(fillTimeFormat, strings.Join(parts, " "))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDecimal parses a Webull numeric field. Values may carry a leading
// "@" marker and thousands separators ("@1,234.50").
func parseDecimal(value string) (decimal.Decimal, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return decimal.Decimal{}, false
	}
	text = strings.TrimPrefix(text, "@")
	text = strings.ReplaceAll(text, ",", "")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
