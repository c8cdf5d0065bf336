package report

import (
	"testing"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func newTestService(t *testing.T) *Service {
	return NewService(logger.NewTestLogger(t))
}

func TestAnalyze_Classification(t *testing.T) {
	svc := newTestService(t)

	t.Run("below range", func(t *testing.T) {
		res := svc.Analyze([]Value{{
			Name: "Hemoglobin", Value: 9, Unit: "g/dL",
			ReferenceRange: &ReferenceRange{Low: floatPtr(12), High: floatPtr(16)},
		}})

		require.Len(t, res.AbnormalValues, 1)
		f := res.AbnormalValues[0]
		assert.Equal(t, "Hemoglobin", f.Name)
		assert.Equal(t, InterpretationBelowRange, f.Interpretation)
		assert.Empty(t, res.Uncertainty)
	})

	t.Run("above range", func(t *testing.T) {
		res := svc.Analyze([]Value{{
			Name: "Glucose", Value: 180,
			ReferenceRange: &ReferenceRange{Low: floatPtr(70), High: floatPtr(100)},
		}})

		require.Len(t, res.AbnormalValues, 1)
		assert.Equal(t, InterpretationAboveRange, res.AbnormalValues[0].Interpretation)
	})

	t.Run("in range is not a finding", func(t *testing.T) {
		res := svc.Analyze([]Value{{
			Name: "TSH", Value: 2.1,
			ReferenceRange: &ReferenceRange{Low: floatPtr(0.4), High: floatPtr(4.0)},
		}})

		assert.Empty(t, res.AbnormalValues)
	})

	t.Run("missing range is uncertainty, not abnormal", func(t *testing.T) {
		res := svc.Analyze([]Value{{Name: "Vitamin D", Value: 15}})

		assert.Empty(t, res.AbnormalValues)
		require.Len(t, res.Uncertainty, 1)
		assert.Contains(t, res.Uncertainty[0], "Vitamin D")
	})
}

func TestAnalyze_SummaryAndQuestions(t *testing.T) {
	svc := newTestService(t)

	res := svc.Analyze([]Value{
		{Name: "Hemoglobin", Value: 9, ReferenceRange: &ReferenceRange{Low: floatPtr(12), High: floatPtr(16)}},
		{Name: "WBC", Value: 7, ReferenceRange: &ReferenceRange{Low: floatPtr(4), High: floatPtr(11)}},
	})

	assert.Equal(t, "Reviewed 2 value(s); 1 outside the reference range.", res.Summary)
	require.Len(t, res.RecommendedQuestions, 1)
	assert.Equal(t, "What could explain Hemoglobin being below range?", res.RecommendedQuestions[0])
}

func TestAnalyze_FallbackQuestionWhenAllNormal(t *testing.T) {
	svc := newTestService(t)

	res := svc.Analyze([]Value{
		{Name: "WBC", Value: 7, ReferenceRange: &ReferenceRange{Low: floatPtr(4), High: floatPtr(11)}},
	})

	require.Len(t, res.RecommendedQuestions, 1)
	assert.Contains(t, res.RecommendedQuestions[0], "expected ranges")
}

func TestParseText(t *testing.T) {
	text := `Hemoglobin: 9.5 g/dL (12-16)
WBC: 7.2 x10^9/L (4-11)
Notes from the lab technician
Platelets = 140 (150-400)
Vitamin D: 15 ng/mL
: 42
`

	values := ParseText(text)
	require.Len(t, values, 4, "non-matching lines are skipped")

	hb := values[0]
	assert.Equal(t, "Hemoglobin", hb.Name)
	assert.Equal(t, 9.5, hb.Value)
	assert.Equal(t, "g/dL", hb.Unit)
	require.NotNil(t, hb.ReferenceRange)
	assert.Equal(t, 12.0, *hb.ReferenceRange.Low)
	assert.Equal(t, 16.0, *hb.ReferenceRange.High)

	plt := values[2]
	assert.Equal(t, "Platelets", plt.Name)
	require.NotNil(t, plt.ReferenceRange)

	vitD := values[3]
	assert.Equal(t, "Vitamin D", vitD.Name)
	assert.Nil(t, vitD.ReferenceRange)
}

func TestAnalyzeText_EndToEnd(t *testing.T) {
	svc := newTestService(t)

	res := svc.AnalyzeText("Hemoglobin: 9 g/dL (12-16)\nVitamin D: 15 ng/mL\n")

	require.Len(t, res.AbnormalValues, 1)
	assert.Equal(t, InterpretationBelowRange, res.AbnormalValues[0].Interpretation)
	require.Len(t, res.Uncertainty, 1)
	assert.Len(t, res.RecommendedQuestions, 1)
}

func TestAnalyzeText_GarbageInputIsEmptyNotError(t *testing.T) {
	svc := newTestService(t)

	res := svc.AnalyzeText("just a narrative paragraph with no values at all")

	assert.Empty(t, res.AbnormalValues)
	assert.Equal(t, "Reviewed 0 value(s); none were outside their reference ranges.", res.Summary)
}
