/*
Package purohit composes the core calculators into the vendor domain.

PURPOSE:
  A purohit profile carries a base charge, the platform's commission rule
  and the days/slots the purohit can be booked. This package produces the
  booking quote (commission amount and the purohit's net payout) and runs
  availability validation before a profile is saved.

USAGE:
  q := purohit.Quote(p)             // q.Commission, q.NetPayout
  findings := purohit.Validate(clock, p)

SEE ALSO:
  - commission, availability: the composed parts
  - offer: the same pattern for offers
*/
package purohit

import (
	"github.com/sankalp/pricing-engine/availability"
	"github.com/sankalp/pricing-engine/civil"
	"github.com/sankalp/pricing-engine/commission"
	"github.com/sankalp/pricing-engine/money"
	"github.com/sankalp/pricing-engine/validate"
)

// =============================================================================
// PROFILE
// =============================================================================

type Profile struct {
	Name         string
	BaseCharge   money.Money
	Commission   commission.Spec
	Availability []availability.Day
}

// BookingQuote is the money split for one booking.
type BookingQuote struct {
	BaseCharge money.Money
	Commission money.Money
	NetPayout  money.Money
}

// Quote computes the booking split. A commission larger than the base charge
// leaves a zero payout, never a negative one.
func Quote(p Profile) BookingQuote {
	fee := commission.Compute(p.Commission, p.BaseCharge)
	return BookingQuote{
		BaseCharge: p.BaseCharge,
		Commission: fee,
		NetPayout:  p.BaseCharge.SubFloor(fee),
	}
}

// Validate runs the submission checks for a profile.
func Validate(clock civil.Clock, p Profile) validate.Findings {
	v := availability.Validator{Clock: clock}
	return v.Validate(p.Availability)
}
