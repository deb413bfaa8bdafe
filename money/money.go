/*
Package money provides the currency amount type used by every calculator.

PURPOSE:
  A single non-negative amount type backed by decimal.Decimal so that price
  and commission arithmetic never accumulates floating-point error. The
  magnitude is currency-agnostic; display formatting defaults to rupees
  because that is what the admin screens render.

KEY CONCEPTS:
  - Money: an immutable value type; every operation returns a new value
  - Clamping: SubFloor never goes below zero. Calculators rely on this to
    guarantee an effective price floor of zero without special cases.

USAGE:
  base := money.New(1000)
  saved := base.Percent(decimal.NewFromInt(20)) // 200
  effective := base.SubFloor(saved)             // 800

SEE ALSO:
  - pricing: discount breakdowns over Money
  - commission: commission computation over Money
*/
package money

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Non-negative currency amount
// =============================================================================

type Money struct {
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// New builds a Money from a float, clamping negatives to zero.
func New(v float64) Money {
	return FromDecimal(decimal.NewFromFloat(v))
}

// FromInt builds a Money from an integer amount, clamping negatives to zero.
func FromInt(v int) Money {
	return FromDecimal(decimal.NewFromInt(int64(v)))
}

// FromDecimal clamps negatives to zero. All constructors funnel through here
// so a negative Money is unrepresentable.
func FromDecimal(d decimal.Decimal) Money {
	if d.IsNegative() {
		return Money{value: decimal.Zero}
	}
	return Money{value: d}
}

func Zero() Money { return Money{value: decimal.Zero} }

// MustParse builds a Money from a decimal string, returning zero on failure.
func MustParse(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero()
	}
	return FromDecimal(d)
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func (m Money) Add(other Money) Money { return Money{value: m.value.Add(other.value)} }

// SubFloor subtracts, clamping the result at zero.
func (m Money) SubFloor(other Money) Money {
	return FromDecimal(m.value.Sub(other.value))
}

func (m Money) Mul(s decimal.Decimal) Money { return FromDecimal(m.value.Mul(s)) }

// Percent returns p percent of the amount.
func (m Money) Percent(p decimal.Decimal) Money {
	return FromDecimal(m.value.Mul(p).Div(hundred))
}

// PercentOf returns what percentage this amount is of the given base,
// or zero when the base is zero.
func (m Money) PercentOf(base Money) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return m.value.Div(base.value).Mul(hundred)
}

func (m Money) Min(other Money) Money {
	if m.LessThan(other) {
		return m
	}
	return other
}

func (m Money) Max(other Money) Money {
	if m.GreaterThan(other) {
		return m
	}
	return other
}

// =============================================================================
// COMPARISON / INSPECTION
// =============================================================================

func (m Money) Equal(other Money) bool       { return m.value.Equal(other.value) }
func (m Money) GreaterThan(other Money) bool { return m.value.GreaterThan(other.value) }
func (m Money) LessThan(other Money) bool    { return m.value.LessThan(other.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }

// Decimal exposes the underlying decimal for callers that need raw math.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Float64() float64 { f, _ := m.value.Float64(); return f }

func (m Money) String() string { return m.value.String() }

// DisplayINR renders the amount with the rupee sign, two decimal places.
func (m Money) DisplayINR() string { return "₹" + m.value.StringFixed(2) }
