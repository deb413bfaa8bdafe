/*
Package validate defines the structured finding type every validator returns.

PURPOSE:
  Validators in this engine never panic and never return error; they return a
  list of findings the caller renders or acts on. Each finding carries the
  field path it concerns, a human-readable message, and a severity. Severity
  is a two-level enum rather than a boolean so callers can warn without
  blocking (an offer whose window already elapsed is a warning, a reversed
  date range is fatal).

USAGE:
  fs := validator.Validate(input)
  if fs.HasFatal() {
      // block submission, render fs.Fatal()
  }
  for _, w := range fs.Warnings() {
      // surface but do not block
  }

SEE ALSO:
  - availability, schedule, factory: producers of findings
*/
package validate

import "fmt"

// =============================================================================
// SEVERITY
// =============================================================================

type Severity int

const (
	// SeverityFatal findings must block whatever the caller was about to do.
	SeverityFatal Severity = iota
	// SeverityWarning findings are surfaced to the user but do not block.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// =============================================================================
// FINDING
// =============================================================================

type Finding struct {
	// Path identifies the field the finding concerns, e.g. "end" or
	// "days[2].timeSlots".
	Path     string
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Path, f.Message, f.Severity)
}

// Fatalf builds a fatal finding.
func Fatalf(path, format string, args ...any) Finding {
	return Finding{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityFatal}
}

// Warnf builds a warning finding.
func Warnf(path, format string, args ...any) Finding {
	return Finding{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning}
}

// =============================================================================
// FINDINGS - Result list helpers
// =============================================================================

type Findings []Finding

func (fs Findings) HasFatal() bool {
	for _, f := range fs {
		if f.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// Fatal returns only the fatal findings.
func (fs Findings) Fatal() Findings {
	var out Findings
	for _, f := range fs {
		if f.Severity == SeverityFatal {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns only the warning findings.
func (fs Findings) Warnings() Findings {
	var out Findings
	for _, f := range fs {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}
