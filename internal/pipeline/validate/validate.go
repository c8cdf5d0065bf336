// Package validate checks raw request payloads before any pipeline stage
// runs. Everything here is pure: no I/O, no state.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"
)

const (
	minSeverity = 1
	maxSeverity = 10

	// One year of hours. Durations beyond that are almost certainly typos.
	maxDurationHours = 8760.0

	minAgeYears = 0
	maxAgeYears = 120
)

// TurnInput carries the caller-supplied fields of a conversational turn.
// Pointer fields are optional structured hints alongside the free text.
type TurnInput struct {
	Text          string
	Severity      *int
	DurationHours *float64
	AgeYears      *int
}

// Turn validates a conversational turn against the configured text limit.
// The limit is measured in runes so multi-byte input is not penalized.
func Turn(in TurnInput, maxTextLength int) error {
	if strings.TrimSpace(in.Text) == "" {
		return errors.NewEmptyInputError()
	}
	if n := utf8.RuneCountInString(in.Text); n > maxTextLength {
		return errors.NewTextTooLongError(n, maxTextLength)
	}
	if in.Severity != nil && (*in.Severity < minSeverity || *in.Severity > maxSeverity) {
		return errors.NewInputValidationError(
			fmt.Sprintf("severity must be between %d and %d, got %d", minSeverity, maxSeverity, *in.Severity))
	}
	if in.DurationHours != nil && (*in.DurationHours < 0 || *in.DurationHours > maxDurationHours) {
		return errors.NewInputValidationError(
			fmt.Sprintf("durationHours must be between 0 and %.0f, got %g", maxDurationHours, *in.DurationHours))
	}
	if in.AgeYears != nil && (*in.AgeYears < minAgeYears || *in.AgeYears > maxAgeYears) {
		return errors.NewInputValidationError(
			fmt.Sprintf("ageYears must be between %d and %d, got %d", minAgeYears, maxAgeYears, *in.AgeYears))
	}
	return nil
}

// MedicationCheck validates a medication review request. At least one
// medication or a new prescription must be present; blank entries are
// tolerated here and skipped downstream.
func MedicationCheck(medications []string, newPrescription string) error {
	if strings.TrimSpace(newPrescription) != "" {
		return nil
	}
	for _, m := range medications {
		if strings.TrimSpace(m) != "" {
			return nil
		}
	}
	return errors.NewEmptyInputError()
}

// Report validates a report analysis request against the configured text limit.
func Report(text string, maxTextLength int) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewEmptyInputError()
	}
	if n := utf8.RuneCountInString(text); n > maxTextLength {
		return errors.NewTextTooLongError(n, maxTextLength)
	}
	return nil
}

// ReportInput validates a report analysis request that may carry either
// free text or pre-structured values. Exactly one of the two is accepted.
func ReportInput(text string, valueCount, maxTextLength int) error {
	if valueCount > 0 {
		if strings.TrimSpace(text) != "" {
			return errors.NewInputValidationError("text and values are mutually exclusive")
		}
		return nil
	}
	return Report(text, maxTextLength)
}
