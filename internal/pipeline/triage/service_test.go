package triage

import (
	"testing"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func newInput(keywords []string, severity *int, duration *float64) *Input {
	return &Input{
		Features: &features.StructuredFeatures{
			SymptomKeywords: keywords,
			Severity:        severity,
			DurationHours:   duration,
		},
	}
}

func TestDecide_EmergencyOverride(t *testing.T) {
	svc := NewService(logger.NewTestLogger(t))

	d := svc.Decide(newInput([]string{"chest pain"}, intPtr(2), floatPtr(1)), []string{"chest pain"})

	assert.Equal(t, UrgencyEmergency, d.UrgencyLevel)
	assert.Equal(t, []string{"chest pain"}, d.RedFlagsDetected)
	assert.Equal(t, SystemActionCircuitBreaker, d.SystemAction)
	assert.Empty(t, d.PossibleCauses, "possible causes must be suppressed on the emergency branch")
	assert.Equal(t, "Call emergency services now.", d.RecommendedAction.Primary)
	assert.NotEmpty(t, d.RecommendedAction.Secondary)
}

func TestDecide_BranchOrder(t *testing.T) {
	svc := NewService(logger.NewNoOpLogger())

	tests := []struct {
		name     string
		severity *int
		duration *float64
		want     UrgencyLevel
	}{
		{
			name:     "severity branch wins over duration branch",
			severity: intPtr(9),
			duration: floatPtr(1),
			want:     UrgencyUrgentCare,
		},
		{
			name:     "severity 8 is the urgent boundary",
			severity: intPtr(8),
			want:     UrgencyUrgentCare,
		},
		{
			name:     "severity 7 falls through",
			severity: intPtr(7),
			duration: floatPtr(2),
			want:     UrgencySelfCare,
		},
		{
			name:     "long duration goes to primary care",
			severity: intPtr(3),
			duration: floatPtr(96),
			want:     UrgencyPrimaryCare,
		},
		{
			name:     "duration 72 is the primary boundary",
			severity: intPtr(3),
			duration: floatPtr(72),
			want:     UrgencyPrimaryCare,
		},
		{
			name:     "mild and short is self care",
			severity: intPtr(2),
			duration: floatPtr(2),
			want:     UrgencySelfCare,
		},
		{
			name: "no hints at all is self care",
			want: UrgencySelfCare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := svc.Decide(newInput([]string{"headache"}, tt.severity, tt.duration), nil)
			assert.Equal(t, tt.want, d.UrgencyLevel)
			assert.Equal(t, SystemActionNone, d.SystemAction)
			assert.Empty(t, d.RedFlagsDetected)
			assert.NotEmpty(t, d.RiskRationale)
		})
	}
}

func TestDecide_PossibleCauses(t *testing.T) {
	svc := NewService(logger.NewNoOpLogger())

	t.Run("from cause table, capped at three", func(t *testing.T) {
		d := svc.Decide(newInput([]string{"headache", "fever", "cough"}, nil, nil), nil)
		assert.Len(t, d.PossibleCauses, 3)
		// Table order: headache causes come first.
		assert.Equal(t, []string{"tension headache", "migraine", "dehydration"}, d.PossibleCauses)
	})

	t.Run("deduplicated across keywords", func(t *testing.T) {
		d := svc.Decide(newInput([]string{"nausea", "vomiting"}, nil, nil), nil)
		assert.Equal(t, []string{"gastroenteritis", "food poisoning"}, d.PossibleCauses)
	})

	t.Run("omitted when no keyword matches the table", func(t *testing.T) {
		d := svc.Decide(newInput([]string{"palpitations"}, nil, nil), nil)
		assert.Empty(t, d.PossibleCauses)
	})
}

func TestMoreSevere(t *testing.T) {
	assert.True(t, MoreSevere(UrgencyEmergency, UrgencyUrgentCare))
	assert.True(t, MoreSevere(UrgencyUrgentCare, UrgencyPrimaryCare))
	assert.True(t, MoreSevere(UrgencyPrimaryCare, UrgencySelfCare))
	assert.False(t, MoreSevere(UrgencySelfCare, UrgencyEmergency))
	assert.False(t, MoreSevere(UrgencySelfCare, UrgencySelfCare))
}
