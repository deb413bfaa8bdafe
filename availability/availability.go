/*
Package availability validates a purohit's bookable days and time slots.

PURPOSE:
  A profile lists days and, per day, time-slot labels like "9:00 AM". Before
  such a profile can be saved the engine checks that every label parses, that
  every slot falls inside the bookable daily window (05:00 to 22:00), that no
  two slots on a day resolve to the same minute, and that no day is already
  in the past. Each violation becomes a finding; nothing here throws.

KEY CONCEPTS:
  - Slot labels canonicalize to minutes since civil midnight (0–1439), which
    is what the window and duplicate checks compare.
  - A day's slot list is flagged as a whole for format and window problems;
    the duplicate check reports only the first collision per day.

USAGE:
  v := availability.Validator{Clock: civil.SystemClock{}}
  findings := v.Validate(days)

SEE ALSO:
  - civil: "today" for the past-date check
  - validate: the finding type returned here
*/
package availability

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sankalp/pricing-engine/civil"
	"github.com/sankalp/pricing-engine/validate"
)

// =============================================================================
// DAILY WINDOW - Bookable minutes of a civil day, inclusive bounds
// =============================================================================

const (
	WindowOpen  = 5 * 60  // 05:00
	WindowClose = 22 * 60 // 22:00
)

// =============================================================================
// SLOT LABEL PARSING
// =============================================================================

// ErrSlotFormat is returned when a label is not of the form "H:MM AM".
var ErrSlotFormat = errors.New("invalid time slot format")

// SlotFormatError reports which label failed to parse.
type SlotFormatError struct {
	Label string
}

func (e *SlotFormatError) Error() string {
	return fmt.Sprintf("invalid time slot format: %q (want H:MM AM or H:MM PM)", e.Label)
}

func (e *SlotFormatError) Unwrap() error { return ErrSlotFormat }

// ParseSlotLabel parses "H:MM AM|PM" (1–12 hour, two-digit minute, optional
// space, case-insensitive meridiem) into minutes since midnight.
func ParseSlotLabel(label string) (int, error) {
	s := strings.TrimSpace(label)

	upper := strings.ToUpper(s)
	var meridiem string
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	default:
		return 0, &SlotFormatError{Label: label}
	}
	clock := strings.TrimSpace(s[:len(s)-2])

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(mm) != 2 || len(hh) < 1 || len(hh) > 2 {
		return 0, &SlotFormatError{Label: label}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, &SlotFormatError{Label: label}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, &SlotFormatError{Label: label}
	}

	// 12 AM is midnight, 12 PM is noon.
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}

// =============================================================================
// DAY / VALIDATOR
// =============================================================================

// Day is one bookable date with its slot labels in display order.
type Day struct {
	Date      civil.DateTime
	TimeSlots []string
}

type Validator struct {
	Clock civil.Clock
}

// Validate checks every day and returns findings. Input is not mutated.
func (v Validator) Validate(days []Day) validate.Findings {
	today := v.Clock.Now().Midnight()

	var findings validate.Findings
	for i, day := range days {
		path := fmt.Sprintf("days[%d]", i)

		if day.Date.BeforeMidnight(today) {
			findings = append(findings, validate.Fatalf(
				path+".date", "date %s is in the past", day.Date.FormatDate()))
		}

		minutes := make([]int, 0, len(day.TimeSlots))
		badFormat := false
		outOfWindow := false
		for _, slot := range day.TimeSlots {
			m, err := ParseSlotLabel(slot)
			if err != nil {
				badFormat = true
				continue
			}
			if m < WindowOpen || m > WindowClose {
				outOfWindow = true
			}
			minutes = append(minutes, m)
		}

		// Format and window problems flag the day's whole slot list, once each.
		if badFormat {
			findings = append(findings, validate.Fatalf(
				path+".timeSlots", "time slots must be in H:MM AM/PM format"))
		}
		if outOfWindow {
			findings = append(findings, validate.Fatalf(
				path+".timeSlots", "time slots must be between 5:00 AM and 10:00 PM"))
		}

		sort.Ints(minutes)
		for j := 1; j < len(minutes); j++ {
			if minutes[j] == minutes[j-1] {
				findings = append(findings, validate.Fatalf(
					path+".timeSlots", "duplicate or overlapping time slots on %s",
					day.Date.FormatDate()))
				break // first collision per day is enough
			}
		}
	}
	return findings
}
