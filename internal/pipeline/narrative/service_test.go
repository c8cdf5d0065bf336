package narrative

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel implements llms.Model with a scripted response.
type fakeModel struct {
	response string
	err      error
	delay    time.Duration
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.response, f.err
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	out, err := f.Call(ctx, "", options...)
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: out}},
	}, nil
}

func newEnhancer(model llms.Model, timeout time.Duration, t *testing.T) *Enhancer {
	return NewEnhancer(model, timeout, logger.NewTestLogger(t))
}

func selfCareContext() *Context {
	return &Context{
		UrgencyLevel:   "self_care",
		RiskRationale:  "No emergency indicators and no high-risk severity or duration.",
		PossibleCauses: []string{"tension headache"},
	}
}

func TestEnhance_Success(t *testing.T) {
	model := &fakeModel{
		response: `{"riskRationale": "Nothing urgent showed up; rest should help.", "possibleCauses": ["tension headache"]}`,
	}
	e := newEnhancer(model, time.Second, t)

	got, err := e.Enhance(context.Background(), selfCareContext())
	require.NoError(t, err)
	assert.Equal(t, "Nothing urgent showed up; rest should help.", got.RiskRationale)
	assert.Equal(t, []string{"tension headache"}, got.PossibleCauses)
}

func TestEnhance_ToleratesCodeFences(t *testing.T) {
	model := &fakeModel{
		response: "```json\n{\"riskRationale\": \"All clear for now.\"}\n```",
	}
	e := newEnhancer(model, time.Second, t)

	got, err := e.Enhance(context.Background(), selfCareContext())
	require.NoError(t, err)
	assert.Equal(t, "All clear for now.", got.RiskRationale)
}

func TestEnhance_FailurePaths(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{
			name:  "model error",
			model: &fakeModel{err: fmt.Errorf("upstream 500")},
		},
		{
			name:  "no JSON in output",
			model: &fakeModel{response: "I cannot help with that."},
		},
		{
			name:  "invalid JSON",
			model: &fakeModel{response: `{"riskRationale": `},
		},
		{
			name:  "empty rationale",
			model: &fakeModel{response: `{"riskRationale": "   "}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnhancer(tt.model, time.Second, t)
			got, err := e.Enhance(context.Background(), selfCareContext())
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestEnhance_Timeout(t *testing.T) {
	model := &fakeModel{
		response: `{"riskRationale": "too late"}`,
		delay:    200 * time.Millisecond,
	}
	e := newEnhancer(model, 10*time.Millisecond, t)

	start := time.Now()
	_, err := e.Enhance(context.Background(), selfCareContext())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 150*time.Millisecond, "the call must be cut off, not awaited")
}

func TestEnhance_ContractViolations(t *testing.T) {
	t.Run("causes on emergency are rejected", func(t *testing.T) {
		model := &fakeModel{
			response: `{"riskRationale": "Call for help now.", "possibleCauses": ["anxiety"]}`,
		}
		e := newEnhancer(model, time.Second, t)

		_, err := e.Enhance(context.Background(), &Context{
			UrgencyLevel:  "emergency",
			RiskRationale: "Emergency indicators detected.",
		})
		assert.Error(t, err)
	})

	t.Run("invented causes are rejected", func(t *testing.T) {
		model := &fakeModel{
			response: `{"riskRationale": "Rest up.", "possibleCauses": ["a brand new cause"]}`,
		}
		e := newEnhancer(model, time.Second, t)

		_, err := e.Enhance(context.Background(), &Context{
			UrgencyLevel:  "self_care",
			RiskRationale: "Self care is reasonable.",
		})
		assert.Error(t, err)
	})
}

func TestEnhance_CancelledContext(t *testing.T) {
	model := &fakeModel{response: `{"riskRationale": "ok"}`, delay: time.Second}
	e := newEnhancer(model, time.Minute, t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Enhance(ctx, selfCareContext())
	assert.Error(t, err)
}
