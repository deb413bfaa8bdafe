/*
Package offer composes the core calculators into the Offer domain.

PURPOSE:
  An offer is a discounted price over a date window, targeted at a list of
  cities. This package assembles the pieces the offer screens need: a quote
  (pricing breakdown plus a window label) and submission validation. It adds
  no math of its own; everything is delegated to pricing, schedule and
  collection.

USAGE:
  q := offer.Quote(o)
  findings := offer.Validate(clock, o)
  // findings.HasFatal() blocks save; warnings (ended window) only annotate

SEE ALSO:
  - pricing, schedule, collection: the composed parts
  - purohit: the same pattern for vendor bookings
*/
package offer

import (
	"github.com/sankalp/pricing-engine/civil"
	"github.com/sankalp/pricing-engine/collection"
	"github.com/sankalp/pricing-engine/money"
	"github.com/sankalp/pricing-engine/pricing"
	"github.com/sankalp/pricing-engine/schedule"
	"github.com/sankalp/pricing-engine/validate"
)

// =============================================================================
// OFFER
// =============================================================================

type Offer struct {
	Title    string
	Base     money.Money
	Discount pricing.DiscountSpec
	Window   schedule.Range
	Cities   []string
}

// OfferQuote is everything the listing card shows for one offer.
type OfferQuote struct {
	Price       pricing.Breakdown
	WindowLabel string
	Cities      []string
}

// Quote computes the display quote. Pure; never fails.
func Quote(o Offer) OfferQuote {
	return OfferQuote{
		Price:       pricing.Apply(o.Base, o.Discount),
		WindowLabel: schedule.Summarize(o.Window),
		Cities:      collection.DedupeCaseInsensitive(o.Cities),
	}
}

// Validate runs the submission checks for an offer. An already-ended window
// comes back as a warning, not a block.
func Validate(clock civil.Clock, o Offer) validate.Findings {
	v := schedule.Validator{Clock: clock}
	return v.Validate(o.Window)
}
