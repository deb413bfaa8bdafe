/*
Package civil provides the fixed-offset civil time frame for the engine.

PURPOSE:
  Every "is this in the past" and "what is today" decision in the engine is
  made in a fixed UTC+5:30 civil frame (IST), never in UTC and never in the
  host machine's local zone. This package owns that conversion and the
  calendar arithmetic the validators and the recurrence engine need.

KEY CONCEPTS:
  - DateTime: an instant pinned to the fixed +330 minute zone
  - Clock: an injectable "now" capability so tests are deterministic.
    SystemClock reads the wall clock fresh on every call; nothing caches it.
  - No DST: the offset is constant, so civil arithmetic is plain arithmetic.

USAGE:
  clock := civil.SystemClock{}
  today := clock.Now().Midnight()
  due := civil.Date(2025, time.June, 1)
  if due.Before(today) { ... }

SEE ALSO:
  - availability, schedule: validators that compare against Clock.Now()
  - recurrence: occurrence expansion over DateTime
*/
package civil

import (
	"time"
)

// OffsetMinutes is the fixed civil offset east of UTC. There is no DST in
// this frame.
const OffsetMinutes = 330

// Zone is the fixed +05:30 location all DateTimes are pinned to.
var Zone = time.FixedZone("IST", OffsetMinutes*60)

// =============================================================================
// DATE TIME - An instant in the fixed civil frame
// =============================================================================

type DateTime struct {
	t time.Time
}

// Date constructs a civil midnight.
func Date(year int, month time.Month, day int) DateTime {
	return DateTime{t: time.Date(year, month, day, 0, 0, 0, 0, Zone)}
}

// At constructs a civil timestamp at minute precision.
func At(year int, month time.Month, day, hour, minute int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, minute, 0, 0, Zone)}
}

// ToCivil converts any instant into the civil frame. The result is the same
// regardless of which zone the input carries or where the code runs.
func ToCivil(instant time.Time) DateTime {
	return DateTime{t: instant.In(Zone)}
}

// =============================================================================
// CLOCK - Injectable "now" capability
// =============================================================================

type Clock interface {
	// Now returns the current instant in the civil frame. Implementations
	// must read fresh per call, never cache.
	Now() DateTime
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() DateTime { return ToCivil(time.Now()) }

// FixedClock pins "now" for tests.
type FixedClock struct {
	At DateTime
}

func (c FixedClock) Now() DateTime { return c.At }

// =============================================================================
// COMPARISON
// =============================================================================

func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }
func (d DateTime) After(other DateTime) bool  { return d.t.After(other.t) }
func (d DateTime) Equal(other DateTime) bool  { return d.t.Equal(other.t) }
func (d DateTime) IsZero() bool               { return d.t.IsZero() }

// BeforeMidnight reports whether this value's civil date is strictly earlier
// than the other's civil date. Time-of-day is ignored on both sides.
func (d DateTime) BeforeMidnight(other DateTime) bool {
	return d.Midnight().Before(other.Midnight())
}

// =============================================================================
// ARITHMETIC
// =============================================================================

// Midnight truncates to the start of the civil day.
func (d DateTime) Midnight() DateTime {
	y, m, day := d.t.Date()
	return Date(y, m, day)
}

// AddDays, AddMonths and AddYears use Go's AddDate normalization: a day that
// does not exist in the target month rolls forward (Jan 31 + 1 month is
// Mar 2 or Mar 3).
func (d DateTime) AddDays(n int) DateTime   { return DateTime{t: d.t.AddDate(0, 0, n)} }
func (d DateTime) AddMonths(n int) DateTime { return DateTime{t: d.t.AddDate(0, n, 0)} }
func (d DateTime) AddYears(n int) DateTime  { return DateTime{t: d.t.AddDate(n, 0, 0)} }

// =============================================================================
// PROPERTIES
// =============================================================================

func (d DateTime) Year() int             { return d.t.Year() }
func (d DateTime) Month() time.Month     { return d.t.Month() }
func (d DateTime) Day() int              { return d.t.Day() }
func (d DateTime) Weekday() time.Weekday { return d.t.Weekday() }

// Time exposes the underlying instant, already pinned to the civil zone.
func (d DateTime) Time() time.Time { return d.t }

func (d DateTime) String() string { return d.t.Format("2006-01-02 15:04") }

// FormatDate renders just the civil date.
func (d DateTime) FormatDate() string { return d.t.Format("2006-01-02") }

// FormatLong renders a human-facing timestamp like "Jan 2, 2006 3:04 PM".
func (d DateTime) FormatLong() string { return d.t.Format("Jan 2, 2006 3:04 PM") }
