package money

import (
	"github.com/shopspring/decimal"
)

// Currency is the ISO 4217 code all amounts are denominated in.
// Multi-currency support is out of scope for a single-register terminal.
const Currency = "SEK"

// Money is an immutable monetary amount, always normalized to exactly
// two fractional digits using round-half-up. Every operation returns a
// new, independently normalized value.
type Money struct {
	value decimal.Decimal
}

// New creates a Money from a decimal, normalized to scale 2.
func New(value decimal.Decimal) Money {
	return Money{value: value.Round(2)}
}

// NewFromFloat creates a Money from a float, normalized to scale 2.
func NewFromFloat(value float64) Money {
	return New(decimal.NewFromFloat(value))
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{value: decimal.Zero.Round(2)}
}

// Add returns the sum of this and the other amount.
func (m Money) Add(other Money) Money {
	return New(m.value.Add(other.value))
}

// Subtract returns the difference between this and the other amount.
// The result may be negative; callers decide whether that is an error.
func (m Money) Subtract(other Money) Money {
	return New(m.value.Sub(other.value))
}

// Multiply returns this amount multiplied by a scalar factor, used for
// VAT and discount rate math.
func (m Money) Multiply(factor float64) Money {
	return New(m.value.Mul(decimal.NewFromFloat(factor)))
}

// MultiplyInt returns this amount multiplied by an integer quantity.
func (m Money) MultiplyInt(quantity int) Money {
	return New(m.value.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// Equal reports whether two amounts have the same normalized value.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// GreaterThan reports whether this amount is strictly greater than the other.
func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// Decimal returns the underlying scale-2 decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Float64 returns the amount as a float, for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

// String formats the amount with two fractional digits and the currency
// code, e.g. "42.34 SEK".
func (m Money) String() string {
	return m.value.StringFixed(2) + " " + Currency
}

// MarshalJSON encodes the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(2)), nil
}
