package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sankalp/pricing-engine/validate"
)

func TestFindingsSeveritySplit(t *testing.T) {
	fs := validate.Findings{
		validate.Fatalf("end", "end must be after start"),
		validate.Warnf("end", "already ended"),
	}

	assert.True(t, fs.HasFatal())
	assert.Len(t, fs.Fatal(), 1)
	assert.Len(t, fs.Warnings(), 1)
	assert.Equal(t, validate.SeverityWarning, fs.Warnings()[0].Severity)
}

func TestFindingsEmpty(t *testing.T) {
	var fs validate.Findings

	assert.False(t, fs.HasFatal())
	assert.Empty(t, fs.Fatal())
	assert.Empty(t, fs.Warnings())
}

func TestFindingString(t *testing.T) {
	f := validate.Fatalf("days[0].date", "date %s is in the past", "2025-01-01")

	assert.Equal(t, "days[0].date: date 2025-01-01 is in the past (fatal)", f.String())
	assert.Equal(t, "fatal", validate.SeverityFatal.String())
	assert.Equal(t, "warning", validate.SeverityWarning.String())
}
