/*
Package recurrence expands event recurrence rules into occurrence dates.

PURPOSE:
  Events and offers can repeat daily, weekly (on a set of weekdays), monthly
  or yearly. Given a validated rule and a start date, this package produces a
  bounded list of upcoming occurrences and a short human-readable summary of
  the rule for the listing screens.

KEY CONCEPTS:
  - Spec: one-time or recurring with a Frequency; weekly rules carry a DaySet
  - Expansion: a cursor walk from the start date. Weekly rules advance the
    cursor one day at a time and emit whenever the weekday is in the set, so
    adjacent set members yield back-to-back days. Monthly and yearly rules
    step by their own calendar unit and inherit AddDate's end-of-month
    normalization.

  The engine assumes a validated Spec (recurring implies a frequency, weekly
  implies a non-empty day set); the factory enforces that before a Spec gets
  here.

USAGE:
  spec := recurrence.Weekly(recurrence.NewDaySet(time.Monday, time.Friday))
  next := recurrence.NextOccurrences(start, spec, 10)
  label := recurrence.Summarize(spec) // "Weekly on Mon, Fri"

SEE ALSO:
  - civil: the calendar arithmetic underneath
  - factory: validated construction of Spec from raw payloads
*/
package recurrence

import (
	"strings"
	"time"

	"github.com/sankalp/pricing-engine/civil"
)

// =============================================================================
// FREQUENCY / DAY SET
// =============================================================================

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// DaySet is a set of weekdays (Sunday = 0, matching time.Weekday).
type DaySet struct {
	days [7]bool
}

func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		if d >= 0 && d <= 6 {
			s.days[d] = true
		}
	}
	return s
}

// NewDaySetFromInts builds a DaySet from raw 0–6 integers; out-of-range
// values are ignored.
func NewDaySetFromInts(days ...int) DaySet {
	var s DaySet
	for _, d := range days {
		if d >= 0 && d <= 6 {
			s.days[d] = true
		}
	}
	return s
}

func (s DaySet) Contains(d time.Weekday) bool { return d >= 0 && d <= 6 && s.days[d] }

func (s DaySet) IsEmpty() bool {
	for _, set := range s.days {
		if set {
			return false
		}
	}
	return true
}

// List returns the member weekdays in Sunday-first order.
func (s DaySet) List() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.days[d] {
			out = append(out, d)
		}
	}
	return out
}

// =============================================================================
// SPEC
// =============================================================================

// Spec describes a recurrence rule. The zero value is a one-time rule.
type Spec struct {
	Recurring bool
	Frequency Frequency
	Days      DaySet // weekly rules only
}

func OneTime() Spec { return Spec{} }

func Recurring(f Frequency) Spec { return Spec{Recurring: true, Frequency: f} }

func WeeklyOn(days DaySet) Spec {
	return Spec{Recurring: true, Frequency: Weekly, Days: days}
}

// =============================================================================
// EXPANSION
// =============================================================================

// NextOccurrences returns up to count occurrence dates starting from start.
// A one-time spec yields exactly [start] regardless of count. Each call
// recomputes from start; the sequence is not resumable.
func NextOccurrences(start civil.DateTime, spec Spec, count int) []civil.DateTime {
	if count < 1 {
		return nil
	}
	if !spec.Recurring {
		return []civil.DateTime{start}
	}
	if spec.Frequency == Weekly && spec.Days.IsEmpty() {
		// Unvalidated spec; nothing can ever match.
		return nil
	}

	occurrences := make([]civil.DateTime, 0, count)
	cursor := start
	for len(occurrences) < count {
		if spec.Frequency == Weekly {
			for !spec.Days.Contains(cursor.Weekday()) {
				cursor = cursor.AddDays(1)
			}
		}
		occurrences = append(occurrences, cursor)

		switch spec.Frequency {
		case Monthly:
			cursor = cursor.AddMonths(1)
		case Yearly:
			cursor = cursor.AddYears(1)
		default:
			// Daily and Weekly both advance one day; the weekly scan above
			// then walks forward to the next set member.
			cursor = cursor.AddDays(1)
		}
	}
	return occurrences
}

// =============================================================================
// SUMMARY
// =============================================================================

var dayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Summarize renders a rule for listing screens: "One-time", "Daily",
// "Weekly on Mon, Wed", "Monthly", "Yearly".
func Summarize(spec Spec) string {
	if !spec.Recurring {
		return "One-time"
	}
	if spec.Frequency == Weekly {
		var names []string
		for _, d := range spec.Days.List() {
			names = append(names, dayAbbrev[d])
		}
		return "Weekly on " + strings.Join(names, ", ")
	}
	return capitalize(string(spec.Frequency))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
