/*
Package pricing computes discounted prices for offers and product variants.

PURPOSE:
  Given a base price and a discount specification, produce the effective
  price, the absolute amount saved, and the percentage saved. The calculator
  never fails: out-of-range inputs are clamped into valid bounds, so the
  effective price is always within [0, base]. Rejecting bad raw input is the
  factory's job, not this package's.

KEY CONCEPTS:
  - DiscountSpec: a tagged variant (none / percentage / fixed). A percentage
    spec cannot carry a fixed amount and vice versa.
  - Breakdown: the computed result, all three views of the same discount.

USAGE:
  b := pricing.Apply(money.New(1000), pricing.Percentage(20))
  // b.Effective = 800, b.SavedAbsolute = 200, b.SavedPercent = 20

SEE ALSO:
  - commission: the same calculator family for vendor payouts
  - factory: validated construction of DiscountSpec from raw payloads
*/
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sankalp/pricing-engine/money"
)

// =============================================================================
// DISCOUNT SPEC - Tagged variant
// =============================================================================

type Kind string

const (
	KindNone       Kind = "none"
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// DiscountSpec is a closed variant; construct via NoDiscount, Percentage or
// FixedAmount. The zero value behaves as NoDiscount.
type DiscountSpec struct {
	kind    Kind
	percent decimal.Decimal
	fixed   money.Money
}

func NoDiscount() DiscountSpec { return DiscountSpec{kind: KindNone} }

// Percentage builds a percentage discount. The value is clamped into
// [0, 100] at application time.
func Percentage(p float64) DiscountSpec {
	return DiscountSpec{kind: KindPercentage, percent: decimal.NewFromFloat(p)}
}

// FixedAmount builds a flat discount. The value is clamped to the base it
// discounts at application time.
func FixedAmount(m money.Money) DiscountSpec {
	return DiscountSpec{kind: KindFixed, fixed: m}
}

func (s DiscountSpec) Kind() Kind {
	if s.kind == "" {
		return KindNone
	}
	return s.kind
}

// =============================================================================
// BREAKDOWN - Computed result
// =============================================================================

type Breakdown struct {
	Effective     money.Money
	SavedAbsolute money.Money
	SavedPercent  decimal.Decimal
}

// =============================================================================
// CALCULATOR
// =============================================================================

var percentRange = clampRange{min: decimal.Zero, max: decimal.NewFromInt(100)}

// Apply computes the discounted price. It never fails; every input is
// clamped into range first.
func Apply(base money.Money, spec DiscountSpec) Breakdown {
	var saved money.Money
	switch spec.Kind() {
	case KindPercentage:
		saved = base.Percent(percentRange.clamp(spec.percent))
	case KindFixed:
		// money.Money is already floored at zero; cap at the base so the
		// effective price floor is zero.
		saved = spec.fixed.Min(base)
	default:
		saved = money.Zero()
	}

	return Breakdown{
		Effective:     base.SubFloor(saved),
		SavedAbsolute: saved,
		SavedPercent:  saved.PercentOf(base),
	}
}

type clampRange struct {
	min, max decimal.Decimal
}

func (r clampRange) clamp(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(r.min) {
		return r.min
	}
	if d.GreaterThan(r.max) {
		return r.max
	}
	return d
}
