/*
Package schedule validates an offer or event's start/end window.

PURPOSE:
  Two checks, at different severities: an end before its start is fatal (the
  range is nonsense), while a range that has already elapsed relative to
  civil "now" is only a warning — admins may intentionally save an ended
  offer, the screens just need to say so. Both findings attach to the end
  field, matching where the admin fixes them.

USAGE:
  v := schedule.Validator{Clock: civil.SystemClock{}}
  findings := v.Validate(schedule.Range{Start: s, End: e})
  label := schedule.Summarize(r) // "From Jan 1, 2025 ... to ..."

SEE ALSO:
  - validate: the severity distinction the elapsed check relies on
  - offer: composes this into offer validation
*/
package schedule

import (
	"github.com/sankalp/pricing-engine/civil"
	"github.com/sankalp/pricing-engine/validate"
)

// Range is an inclusive start/end window in civil time.
type Range struct {
	Start civil.DateTime
	End   civil.DateTime
}

type Validator struct {
	Clock civil.Clock
}

// Validate checks ordering and elapse. Ordering violations are fatal;
// an already-ended range is a warning so callers can surface it without
// blocking submission.
func (v Validator) Validate(r Range) validate.Findings {
	var findings validate.Findings

	if r.Start.After(r.End) {
		findings = append(findings, validate.Fatalf(
			"end", "end must be after start"))
	}

	if r.End.Before(v.Clock.Now()) {
		findings = append(findings, validate.Warnf(
			"end", "this schedule has already ended"))
	}

	return findings
}

// Summarize renders "From {start} to {end}", with an em dash for an unset
// bound.
func Summarize(r Range) string {
	return "From " + formatBound(r.Start) + " to " + formatBound(r.End)
}

func formatBound(d civil.DateTime) string {
	if d.IsZero() {
		return "—"
	}
	return d.FormatLong()
}
