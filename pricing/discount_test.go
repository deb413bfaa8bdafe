package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sankalp/pricing-engine/money"
	"github.com/sankalp/pricing-engine/pricing"
)

func rs(n float64) money.Money { return money.New(n) }

func TestApply_NoDiscount(t *testing.T) {
	// GIVEN: A base price and no discount
	// WHEN: Applying
	// THEN: Effective equals base, nothing saved

	b := pricing.Apply(rs(1000), pricing.NoDiscount())

	if !b.Effective.Equal(rs(1000)) {
		t.Errorf("expected effective 1000, got %s", b.Effective)
	}
	if !b.SavedAbsolute.IsZero() || !b.SavedPercent.IsZero() {
		t.Errorf("expected nothing saved, got %s / %s", b.SavedAbsolute, b.SavedPercent)
	}
}

func TestApply_ZeroValueSpecBehavesAsNone(t *testing.T) {
	var spec pricing.DiscountSpec

	b := pricing.Apply(rs(500), spec)

	if !b.Effective.Equal(rs(500)) {
		t.Errorf("zero-value spec should not discount, got %s", b.Effective)
	}
}

func TestApply_Percentage(t *testing.T) {
	// GIVEN: Base price 1000 with a 20% discount
	// WHEN: Applying
	// THEN: Effective 800, saved 200, saved percent 20

	b := pricing.Apply(rs(1000), pricing.Percentage(20))

	if !b.Effective.Equal(rs(800)) {
		t.Errorf("expected effective 800, got %s", b.Effective)
	}
	if !b.SavedAbsolute.Equal(rs(200)) {
		t.Errorf("expected saved 200, got %s", b.SavedAbsolute)
	}
	if !b.SavedPercent.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected saved percent 20, got %s", b.SavedPercent)
	}
}

func TestApply_PercentageClamping(t *testing.T) {
	// GIVEN: Out-of-range percentages, below 0 and above 100
	// WHEN: Applying each to a range of bases
	// THEN: Effective price is always within [0, base]

	percentages := []float64{-50, -1, 0, 37.5, 100, 101, 250}
	bases := []float64{0, 1, 999.99, 100000}

	for _, p := range percentages {
		for _, base := range bases {
			b := pricing.Apply(rs(base), pricing.Percentage(p))

			if b.Effective.GreaterThan(rs(base)) {
				t.Errorf("p=%v base=%v: effective %s above base", p, base, b.Effective)
			}
			if b.Effective.LessThan(money.Zero()) {
				t.Errorf("p=%v base=%v: effective %s below zero", p, base, b.Effective)
			}
		}
	}
}

func TestApply_PercentageOverHundredClampsToFree(t *testing.T) {
	b := pricing.Apply(rs(400), pricing.Percentage(150))

	if !b.Effective.IsZero() {
		t.Errorf("150%% should clamp to 100%% and make the price 0, got %s", b.Effective)
	}
	if !b.SavedAbsolute.Equal(rs(400)) {
		t.Errorf("expected full base saved, got %s", b.SavedAbsolute)
	}
}

func TestApply_FixedDiscountFloor(t *testing.T) {
	// GIVEN: A fixed discount at least as large as the base
	// WHEN: Applying
	// THEN: Effective price is exactly zero, saved equals base

	for _, f := range []float64{500, 501, 10000} {
		b := pricing.Apply(rs(500), pricing.FixedAmount(rs(f)))

		if !b.Effective.IsZero() {
			t.Errorf("fixed=%v: expected effective 0, got %s", f, b.Effective)
		}
		if !b.SavedAbsolute.Equal(rs(500)) {
			t.Errorf("fixed=%v: expected saved capped at base, got %s", f, b.SavedAbsolute)
		}
	}
}

func TestApply_FixedDiscountPartial(t *testing.T) {
	b := pricing.Apply(rs(1000), pricing.FixedAmount(rs(150)))

	if !b.Effective.Equal(rs(850)) {
		t.Errorf("expected effective 850, got %s", b.Effective)
	}
	if !b.SavedPercent.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected saved percent 15, got %s", b.SavedPercent)
	}
}

func TestApply_ZeroBase(t *testing.T) {
	// Saved percent must be zero on a zero base, not a division error.
	b := pricing.Apply(money.Zero(), pricing.Percentage(50))

	if !b.Effective.IsZero() || !b.SavedAbsolute.IsZero() || !b.SavedPercent.IsZero() {
		t.Errorf("zero base should yield all-zero breakdown, got %+v", b)
	}
}
