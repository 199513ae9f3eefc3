package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewNormalizesToTwoDecimals(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 10.0, "10.00"},
		{"two decimals kept", 42.34, "42.34"},
		{"rounds half up", 10.005, "10.01"},
		{"rounds down", 10.004, "10.00"},
		{"rounds up", 10.006, "10.01"},
		{"negative rounds half away from zero", -10.005, "-10.01"},
		{"long fraction", 4.704, "4.70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFromFloat(tt.input)
			assert.Equal(t, tt.want, m.Decimal().StringFixed(2))
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := NewFromFloat(10.50)
	b := NewFromFloat(4.25)

	assert.True(t, a.Add(b).Equal(NewFromFloat(14.75)))
	assert.True(t, a.Subtract(b).Equal(NewFromFloat(6.25)))
	assert.True(t, b.Subtract(a).Equal(NewFromFloat(-6.25)))
	assert.True(t, a.MultiplyInt(3).Equal(NewFromFloat(31.50)))
}

func TestMultiplyNormalizesResult(t *testing.T) {
	// 47.04 * 0.10 = 4.704, normalized to 4.70
	discount := NewFromFloat(47.04).Multiply(0.10)
	assert.True(t, discount.Equal(NewFromFloat(4.70)))

	// 22.00 * 0.12 = 2.64, exact at scale 2
	vat := NewFromFloat(22.0).Multiply(0.12)
	assert.True(t, vat.Equal(NewFromFloat(2.64)))
}

func TestSigns(t *testing.T) {
	assert.True(t, NewFromFloat(0.01).IsPositive())
	assert.False(t, Zero().IsPositive())
	assert.False(t, Zero().IsNegative())
	assert.True(t, NewFromFloat(-0.01).IsNegative())
}

func TestComparisons(t *testing.T) {
	assert.True(t, NewFromFloat(10.0).GreaterThan(NewFromFloat(9.99)))
	assert.False(t, NewFromFloat(10.0).GreaterThan(NewFromFloat(10.0)))
	assert.True(t, New(decimal.NewFromInt(5)).Equal(NewFromFloat(5.0)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "42.34 SEK", NewFromFloat(42.34).String())
	assert.Equal(t, "10.00 SEK", NewFromFloat(10.0).String())
	assert.Equal(t, "0.00 SEK", Zero().String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := NewFromFloat(42.34).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "42.34", string(data))

	data, err = NewFromFloat(10.0).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "10.00", string(data))
}
