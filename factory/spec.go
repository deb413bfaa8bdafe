/*
Package factory converts raw admin payloads into validated spec values.

PURPOSE:
  The admin forms submit loosely-typed JSON: a `type` string plus optional
  fields whose presence depends on it. This package is the gate between that
  shape and the engine's tagged spec types. It REJECTS out-of-range raw input
  with findings — the calculators downstream only clamp, so anything that
  should bounce back to the form has to bounce here.

JSON SCHEMAS:
  discount / commission:
    {"type": "percentage", "value": 20}
    {"type": "fixed", "value": 150}
    {"type": "none"}                      (discount only)

  recurrence:
    {"is_recurring": true, "frequency": "weekly", "days_of_week": [1, 3]}

KEY RULES:
  - Discount percentage must be within [0, 100]; fixed must be >= 0.
  - Commission percentage must be within [0, 100]; fixed must be > 0 — a
    zero fixed commission with commission enabled is a form error.
  - Recurring rules need a frequency; weekly rules need a non-empty
    days_of_week with members 0–6.
  - Malformed JSON becomes a fatal finding, never a panic or raw error.

USAGE:
  spec, findings := factory.ParseDiscount(`{"type":"percentage","value":20}`)
  if findings.HasFatal() { ... }

SEE ALSO:
  - pricing, commission, recurrence: the spec types built here
  - validate: the finding type returned on rejection
*/
package factory

import (
	"encoding/json"

	"github.com/sankalp/pricing-engine/commission"
	"github.com/sankalp/pricing-engine/money"
	"github.com/sankalp/pricing-engine/pricing"
	"github.com/sankalp/pricing-engine/recurrence"
	"github.com/sankalp/pricing-engine/validate"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// AmountSpecJSON is the shared payload shape for discounts and commissions.
type AmountSpecJSON struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
}

// RecurrenceJSON is the payload shape for recurrence rules.
type RecurrenceJSON struct {
	IsRecurring bool   `json:"is_recurring"`
	Frequency   string `json:"frequency,omitempty"`
	DaysOfWeek  []int  `json:"days_of_week,omitempty"`
}

// =============================================================================
// DISCOUNT
// =============================================================================

// ParseDiscount parses and validates a discount payload. On any fatal
// finding the returned spec is NoDiscount.
func ParseDiscount(jsonStr string) (pricing.DiscountSpec, validate.Findings) {
	var dj AmountSpecJSON
	if err := json.Unmarshal([]byte(jsonStr), &dj); err != nil {
		return pricing.NoDiscount(), validate.Findings{
			validate.Fatalf("discount", "malformed discount payload"),
		}
	}
	return DiscountFromJSON(dj)
}

// DiscountFromJSON validates an already-decoded discount payload.
func DiscountFromJSON(dj AmountSpecJSON) (pricing.DiscountSpec, validate.Findings) {
	switch dj.Type {
	case "none", "":
		return pricing.NoDiscount(), nil

	case "percentage":
		v, findings := requireValue(dj.Value, "discount.value")
		if findings != nil {
			return pricing.NoDiscount(), findings
		}
		if v < 0 || v > 100 {
			return pricing.NoDiscount(), validate.Findings{
				validate.Fatalf("discount.value", "percentage must be between 0 and 100"),
			}
		}
		return pricing.Percentage(v), nil

	case "fixed":
		v, findings := requireValue(dj.Value, "discount.value")
		if findings != nil {
			return pricing.NoDiscount(), findings
		}
		if v < 0 {
			return pricing.NoDiscount(), validate.Findings{
				validate.Fatalf("discount.value", "fixed discount cannot be negative"),
			}
		}
		return pricing.FixedAmount(money.New(v)), nil

	default:
		return pricing.NoDiscount(), validate.Findings{
			validate.Fatalf("discount.type", "unknown discount type %q", dj.Type),
		}
	}
}

// =============================================================================
// COMMISSION
// =============================================================================

// ParseCommission parses and validates a commission payload. On any fatal
// finding the returned spec is the zero Spec (computes zero commission).
func ParseCommission(jsonStr string) (commission.Spec, validate.Findings) {
	var cj AmountSpecJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return commission.Spec{}, validate.Findings{
			validate.Fatalf("commission", "malformed commission payload"),
		}
	}
	return CommissionFromJSON(cj)
}

// CommissionFromJSON validates an already-decoded commission payload.
func CommissionFromJSON(cj AmountSpecJSON) (commission.Spec, validate.Findings) {
	switch cj.Type {
	case "percentage":
		v, findings := requireValue(cj.Value, "commission.value")
		if findings != nil {
			return commission.Spec{}, findings
		}
		if v < 0 || v > 100 {
			return commission.Spec{}, validate.Findings{
				validate.Fatalf("commission.value", "percentage must be between 0 and 100"),
			}
		}
		return commission.Percentage(v), nil

	case "fixed":
		v, findings := requireValue(cj.Value, "commission.value")
		if findings != nil {
			return commission.Spec{}, findings
		}
		// Unlike a fixed discount, an enabled fixed commission must be
		// strictly positive.
		if v <= 0 {
			return commission.Spec{}, validate.Findings{
				validate.Fatalf("commission.value", "fixed commission must be greater than 0"),
			}
		}
		return commission.FixedAmount(money.New(v)), nil

	default:
		return commission.Spec{}, validate.Findings{
			validate.Fatalf("commission.type", "unknown commission type %q", cj.Type),
		}
	}
}

// =============================================================================
// RECURRENCE
// =============================================================================

// ParseRecurrence parses and validates a recurrence payload. On any fatal
// finding the returned spec is one-time.
func ParseRecurrence(jsonStr string) (recurrence.Spec, validate.Findings) {
	var rj RecurrenceJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return recurrence.OneTime(), validate.Findings{
			validate.Fatalf("recurrence", "malformed recurrence payload"),
		}
	}
	return RecurrenceFromJSON(rj)
}

// RecurrenceFromJSON validates an already-decoded recurrence payload.
func RecurrenceFromJSON(rj RecurrenceJSON) (recurrence.Spec, validate.Findings) {
	if !rj.IsRecurring {
		return recurrence.OneTime(), nil
	}

	var freq recurrence.Frequency
	switch rj.Frequency {
	case "daily":
		freq = recurrence.Daily
	case "weekly":
		freq = recurrence.Weekly
	case "monthly":
		freq = recurrence.Monthly
	case "yearly":
		freq = recurrence.Yearly
	case "":
		return recurrence.OneTime(), validate.Findings{
			validate.Fatalf("recurrence.frequency", "frequency is required for recurring events"),
		}
	default:
		return recurrence.OneTime(), validate.Findings{
			validate.Fatalf("recurrence.frequency", "unknown frequency %q", rj.Frequency),
		}
	}

	if freq == recurrence.Weekly {
		if len(rj.DaysOfWeek) == 0 {
			return recurrence.OneTime(), validate.Findings{
				validate.Fatalf("recurrence.days_of_week", "weekly recurrence needs at least one day"),
			}
		}
		for _, d := range rj.DaysOfWeek {
			if d < 0 || d > 6 {
				return recurrence.OneTime(), validate.Findings{
					validate.Fatalf("recurrence.days_of_week", "day %d is out of range (0-6)", d),
				}
			}
		}
		return recurrence.WeeklyOn(recurrence.NewDaySetFromInts(rj.DaysOfWeek...)), nil
	}

	return recurrence.Recurring(freq), nil
}

// =============================================================================
// HELPERS
// =============================================================================

func requireValue(v *float64, path string) (float64, validate.Findings) {
	if v == nil {
		return 0, validate.Findings{validate.Fatalf(path, "value is required")}
	}
	return *v, nil
}
