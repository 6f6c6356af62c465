package pnl

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the only currency this engine reports in. The source
// feed carries USD amounts only; multi-currency handling is out of scope.
const reportingCurrency = money.USD

// Money represents an exact monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the reporting currency descriptor.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, reportingCurrency).Currency()
}

// String renders the value with the currency's symbol and grouping, rounded
// to the currency's fraction ("$1,234.56").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString renders the value with an explicit sign, the way realized
// P&L cells are displayed ("+$8.00", "-$250.00").
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return "-" + m.Neg().String()
	}
	return "+" + m.String()
}

// StringFixed renders the bare amount with a fixed number of decimal places.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Quantity) Money         { return Money{value: m.value.Mul(n.value)} }
func (m Money) Div(n Quantity) Money         { return Money{value: m.value.Div(n.value)} }

// MarshalJSON renders the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
