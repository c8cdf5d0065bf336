package validate

import (
	"strings"
	"testing"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestTurn(t *testing.T) {
	tests := []struct {
		name     string
		in       TurnInput
		wantCode errors.ErrorCode
	}{
		{
			name: "plain text passes",
			in:   TurnInput{Text: "I have a headache"},
		},
		{
			name: "all hints in range pass",
			in: TurnInput{
				Text:          "severe headache",
				Severity:      intPtr(8),
				DurationHours: floatPtr(72),
				AgeYears:      intPtr(40),
			},
		},
		{
			name:     "empty text rejected",
			in:       TurnInput{Text: ""},
			wantCode: errors.ErrCodeEmptyInput,
		},
		{
			name:     "whitespace-only text rejected",
			in:       TurnInput{Text: "   \n\t "},
			wantCode: errors.ErrCodeEmptyInput,
		},
		{
			name:     "severity zero rejected",
			in:       TurnInput{Text: "headache", Severity: intPtr(0)},
			wantCode: errors.ErrCodeInputValidationFailed,
		},
		{
			name:     "severity eleven rejected",
			in:       TurnInput{Text: "headache", Severity: intPtr(11)},
			wantCode: errors.ErrCodeInputValidationFailed,
		},
		{
			name:     "negative duration rejected",
			in:       TurnInput{Text: "headache", DurationHours: floatPtr(-1)},
			wantCode: errors.ErrCodeInputValidationFailed,
		},
		{
			name:     "duration beyond a year rejected",
			in:       TurnInput{Text: "headache", DurationHours: floatPtr(9000)},
			wantCode: errors.ErrCodeInputValidationFailed,
		},
		{
			name:     "age above cap rejected",
			in:       TurnInput{Text: "headache", AgeYears: intPtr(121)},
			wantCode: errors.ErrCodeInputValidationFailed,
		},
		{
			name: "age boundaries pass",
			in:   TurnInput{Text: "headache", AgeYears: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Turn(tt.in, 4000)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

func TestTurn_LengthLimitCountsRunes(t *testing.T) {
	limit := 10

	assert.NoError(t, Turn(TurnInput{Text: strings.Repeat("é", 10)}, limit))

	err := Turn(TurnInput{Text: strings.Repeat("é", 11)}, limit)
	require.Error(t, err)
	stdErr := err.(*errors.StandardError)
	assert.Equal(t, errors.ErrCodeTextTooLong, stdErr.Code)
}

func TestMedicationCheck(t *testing.T) {
	assert.NoError(t, MedicationCheck([]string{"warfarin"}, ""))
	assert.NoError(t, MedicationCheck(nil, "aspirin"))
	assert.NoError(t, MedicationCheck([]string{"", "  "}, "aspirin"))

	assert.Error(t, MedicationCheck(nil, ""))
	assert.Error(t, MedicationCheck([]string{"", "   "}, " "))
}

func TestReport(t *testing.T) {
	assert.NoError(t, Report("Hemoglobin: 9 g/dL (12-16)", 4000))
	assert.Error(t, Report("", 4000))
	assert.Error(t, Report(strings.Repeat("a", 4001), 4000))
}

func TestReportInput(t *testing.T) {
	assert.NoError(t, ReportInput("Hemoglobin: 9 g/dL (12-16)", 0, 4000))
	assert.NoError(t, ReportInput("", 3, 4000))
	assert.NoError(t, ReportInput("   ", 3, 4000))

	// Text and values cannot be combined in one request.
	err := ReportInput("Hemoglobin: 9", 3, 4000)
	require.Error(t, err)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeInputValidationFailed, stdErr.Code)

	// With no values the text rules still apply.
	assert.Error(t, ReportInput("", 0, 4000))
	assert.Error(t, ReportInput(strings.Repeat("a", 4001), 0, 4000))
}
