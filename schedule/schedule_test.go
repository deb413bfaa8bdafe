package schedule_test

import (
	"testing"
	"time"

	"github.com/sankalp/pricing-engine/civil"
	"github.com/sankalp/pricing-engine/schedule"
	"github.com/sankalp/pricing-engine/validate"
)

func fixedNow() civil.Clock {
	return civil.FixedClock{At: civil.Date(2025, time.June, 1)}
}

func TestValidate_EndBeforeStartIsFatal(t *testing.T) {
	// GIVEN: A range whose end precedes its start
	// WHEN: Validating
	// THEN: Exactly one fatal finding on the end field

	v := schedule.Validator{Clock: fixedNow()}
	r := schedule.Range{
		Start: civil.ToCivil(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)),
		End:   civil.ToCivil(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	fs := v.Validate(r)

	fatal := fs.Fatal()
	if len(fatal) != 1 {
		t.Fatalf("expected exactly one fatal finding, got %d (%v)", len(fatal), fs)
	}
	if fatal[0].Path != "end" {
		t.Errorf("expected finding on end, got %q", fatal[0].Path)
	}
}

func TestValidate_ElapsedRangeIsWarningOnly(t *testing.T) {
	// GIVEN: Civil "now" of 2025-06-01 and a well-ordered January range
	// WHEN: Validating
	// THEN: One warning on end, no fatal findings — callers may still save

	v := schedule.Validator{Clock: fixedNow()}
	r := schedule.Range{
		Start: civil.Date(2025, time.January, 1),
		End:   civil.Date(2025, time.January, 2),
	}

	fs := v.Validate(r)

	if fs.HasFatal() {
		t.Errorf("elapsed range should not be fatal: %v", fs)
	}
	warnings := fs.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if warnings[0].Path != "end" || warnings[0].Severity != validate.SeverityWarning {
		t.Errorf("unexpected warning finding: %+v", warnings[0])
	}
}

func TestValidate_ReversedAndElapsedYieldsBoth(t *testing.T) {
	v := schedule.Validator{Clock: fixedNow()}
	r := schedule.Range{
		Start: civil.Date(2025, time.February, 1),
		End:   civil.Date(2025, time.January, 1),
	}

	fs := v.Validate(r)

	if len(fs.Fatal()) != 1 || len(fs.Warnings()) != 1 {
		t.Errorf("expected one fatal and one warning, got %v", fs)
	}
}

func TestValidate_CurrentRangeIsClean(t *testing.T) {
	v := schedule.Validator{Clock: fixedNow()}
	r := schedule.Range{
		Start: civil.Date(2025, time.May, 1),
		End:   civil.Date(2025, time.July, 1),
	}

	if fs := v.Validate(r); len(fs) != 0 {
		t.Errorf("expected no findings, got %v", fs)
	}
}

func TestSummarize(t *testing.T) {
	r := schedule.Range{
		Start: civil.At(2025, time.January, 1, 9, 0),
		End:   civil.At(2025, time.January, 5, 18, 30),
	}

	got := schedule.Summarize(r)
	want := "From Jan 1, 2025 9:00 AM to Jan 5, 2025 6:30 PM"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSummarize_MissingBounds(t *testing.T) {
	got := schedule.Summarize(schedule.Range{})
	if got != "From — to —" {
		t.Errorf("expected em-dash placeholders, got %q", got)
	}

	half := schedule.Summarize(schedule.Range{Start: civil.Date(2025, time.March, 1)})
	if half != "From Mar 1, 2025 12:00 AM to —" {
		t.Errorf("unexpected half-open summary: %q", half)
	}
}
