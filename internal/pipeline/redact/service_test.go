package redact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_SingleIdentifiers(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name          string
		text          string
		wantLabel     string
		wantGoneParts []string
	}{
		{
			name:          "email address",
			text:          "please reach me at ali.khan@example.com for results",
			wantLabel:     LabelEmail,
			wantGoneParts: []string{"ali.khan@example.com"},
		},
		{
			name:          "pakistani mobile number",
			text:          "call 0300-1234567 when the report is ready",
			wantLabel:     LabelPhonePK,
			wantGoneParts: []string{"0300-1234567"},
		},
		{
			name:          "international phone",
			text:          "my number is +1 415 555 2671 thanks",
			wantLabel:     LabelPhone,
			wantGoneParts: []string{"415 555 2671"},
		},
		{
			name:          "cnic number",
			text:          "cnic 35202-1234567-1 and I have a headache",
			wantLabel:     LabelCNIC,
			wantGoneParts: []string{"35202-1234567-1"},
		},
		{
			name:          "medical record number",
			text:          "MRN: A-109283 shows my old labs",
			wantLabel:     LabelMRN,
			wantGoneParts: []string{"A-109283"},
		},
		{
			name:          "street address",
			text:          "I live at house no 42 near the clinic",
			wantLabel:     LabelAddress,
			wantGoneParts: []string{"house no 42"},
		},
		{
			name:          "date of birth phrasing",
			text:          "date of birth: 12/03/1988, fever since yesterday",
			wantLabel:     LabelDOB,
			wantGoneParts: []string{"12/03/1988"},
		},
		{
			name:          "self introduction",
			text:          "my name is Sara Ahmed and I feel dizzy",
			wantLabel:     LabelNameIntro,
			wantGoneParts: []string{"Sara Ahmed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Apply(tt.text)

			assert.Contains(t, res.Labels, tt.wantLabel)
			assert.True(t, res.HasIdentifiers())
			for _, part := range tt.wantGoneParts {
				assert.NotContains(t, res.SanitizedText, part)
			}
			assert.Contains(t, res.SanitizedText, "[REDACTED:")
		})
	}
}

func TestApply_LabelRecordedOncePerCategory(t *testing.T) {
	svc := NewService()

	res := svc.Apply("write to a@b.com or backup c@d.net please")

	count := 0
	for _, l := range res.Labels {
		if l == LabelEmail {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, strings.Count(res.SanitizedText, "[REDACTED:EMAIL]"))
}

func TestApply_CleanTextUntouched(t *testing.T) {
	svc := NewService()

	text := "I have had a mild headache and fever for 2 days"
	res := svc.Apply(text)

	assert.Equal(t, text, res.SanitizedText)
	assert.Empty(t, res.Labels)
	assert.False(t, res.HasIdentifiers())
}

func TestApply_Idempotent(t *testing.T) {
	svc := NewService()

	first := svc.Apply("email me at test@example.com, cnic 35202-1234567-1, my name is Omar")
	second := svc.Apply(first.SanitizedText)

	assert.Equal(t, first.SanitizedText, second.SanitizedText)
	assert.Empty(t, second.Labels)
}

func TestApply_SymptomNumbersSurvive(t *testing.T) {
	svc := NewService()

	// Clinical numbers must not be mistaken for identifiers.
	res := svc.Apply("severity 7/10, fever of 101.3 for 72 hours, BP 120/80")

	assert.Empty(t, res.Labels)
	assert.Contains(t, res.SanitizedText, "7/10")
	assert.Contains(t, res.SanitizedText, "72 hours")
	assert.Contains(t, res.SanitizedText, "120/80")
}
