/*
Package commission computes the platform commission on a vendor's charge.

PURPOSE:
  The booking flow needs the commission the platform keeps out of a purohit's
  base charge. Like the discount calculator, this never fails: percentage
  specs are clamped into [0, 100] and fixed specs are floored at zero. The
  rule that a fixed commission must be strictly positive when commission is
  enabled is enforced upstream by the factory, not here.

USAGE:
  fee := commission.Compute(commission.Percentage(10), money.New(1000)) // 100

SEE ALSO:
  - pricing: the discount half of this calculator family
  - purohit: composes commission into a booking quote
*/
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/sankalp/pricing-engine/money"
)

// =============================================================================
// COMMISSION SPEC - Tagged variant
// =============================================================================

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Spec is a closed variant; construct via Percentage or FixedAmount. The
// zero value computes a zero commission.
type Spec struct {
	kind    Kind
	percent decimal.Decimal
	fixed   money.Money
}

func Percentage(p float64) Spec {
	return Spec{kind: KindPercentage, percent: decimal.NewFromFloat(p)}
}

func FixedAmount(m money.Money) Spec {
	return Spec{kind: KindFixed, fixed: m}
}

func (s Spec) Kind() Kind { return s.kind }

// =============================================================================
// CALCULATOR
// =============================================================================

var hundred = decimal.NewFromInt(100)

// Compute returns the commission amount for the given base charge. Never
// negative, never an error.
func Compute(spec Spec, base money.Money) money.Money {
	switch spec.kind {
	case KindPercentage:
		p := spec.percent
		if p.IsNegative() {
			p = decimal.Zero
		} else if p.GreaterThan(hundred) {
			p = hundred
		}
		return base.Percent(p)
	case KindFixed:
		// money.Money clamps negatives at construction.
		return spec.fixed
	default:
		return money.Zero()
	}
}
