package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestExtract_KeywordMatching(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single keyword",
			text: "I have had a headache since morning",
			want: []string{"headache"},
		},
		{
			name: "multi-word keyword",
			text: "sudden CHEST PAIN while climbing stairs",
			want: []string{"chest pain"},
		},
		{
			name: "multiple keywords deduplicated",
			text: "fever, fever again, plus a cough",
			want: []string{"fever", "cough"},
		},
		{
			name: "no verbatim match means no hit",
			text: "my head aches badly", // "headache" is not a substring
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Extract(tt.text, Hints{})
			assert.Equal(t, tt.want, got.SymptomKeywords)
		})
	}
}

func TestExtract_AgeBands(t *testing.T) {
	svc := NewService()

	tests := []struct {
		age  int
		want AgeBand
	}{
		{0, AgeBandChild},
		{17, AgeBandChild},
		{18, AgeBandAdult},
		{64, AgeBandAdult},
		{65, AgeBandOlder},
		{90, AgeBandOlder},
	}

	for _, tt := range tests {
		got := svc.Extract("fever", Hints{AgeYears: intPtr(tt.age)})
		assert.Equal(t, tt.want, got.AgeBand, "age %d", tt.age)
	}
}

func TestExtract_HintsPassThrough(t *testing.T) {
	svc := NewService()

	got := svc.Extract("cough", Hints{
		Severity:      intPtr(6),
		DurationHours: floatPtr(48),
	})

	assert.Equal(t, 6, *got.Severity)
	assert.Equal(t, 48.0, *got.DurationHours)
	assert.Empty(t, got.AgeBand)
}

func TestExtract_BoundedOutput(t *testing.T) {
	svc := NewService()

	// A huge input only ever yields vocabulary-sized output.
	text := strings.Repeat("fever cough nausea unrelated words ", 2000)
	got := svc.Extract(text, Hints{})

	assert.LessOrEqual(t, len(got.SymptomKeywords), len(SymptomVocabulary))
	assert.ElementsMatch(t, []string{"fever", "cough", "nausea"}, got.SymptomKeywords)
}
