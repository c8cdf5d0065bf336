// Package narrative optionally rewrites deterministic rationale text in
// plainer language via an external model. Every failure path falls back to
// the deterministic text; the caller always keeps the pre-computed value.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"

	"github.com/tmc/langchaingo/llms"
)

const systemPrompt = `You rewrite clinical guidance in plain, calm language.
Rules: do not change the urgency level, do not add medical claims, do not
invent causes. Respond with JSON only: {"riskRationale": string,
"possibleCauses": [string]}. Keep possibleCauses empty if the input has none.`

type Enhancer struct {
	model   llms.Model
	timeout time.Duration
	logger  logger.Logger
}

func NewEnhancer(model llms.Model, timeout time.Duration, log logger.Logger) *Enhancer {
	return &Enhancer{
		model:   model,
		timeout: timeout,
		logger:  log.With(map[string]interface{}{"stage": "narrative"}),
	}
}

// Enhance asks the model to rewrite the rationale under a bounded context.
// A non-nil error means the caller keeps the deterministic text; the error
// is never surfaced past the pipeline.
func (e *Enhancer) Enhance(ctx context.Context, decision *Context) (*Enhanced, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	payload, err := json.Marshal(decision)
	if err != nil {
		return nil, errors.NewNarrativeMalformedError(err.Error())
	}
	prompt := fmt.Sprintf("%s\n\nGuidance to rewrite:\n%s", systemPrompt, payload)

	completion, err := e.model.Call(callCtx, prompt, llms.WithTemperature(0))
	if err != nil {
		if callCtx.Err() != nil {
			return nil, errors.NewNarrativeTimeoutError()
		}
		return nil, errors.NewNarrativeMalformedError(err.Error())
	}

	enhanced, err := parseOutput(completion)
	if err != nil {
		return nil, err
	}
	if err := checkContract(decision, enhanced); err != nil {
		return nil, err
	}

	e.logger.Debug("narrative enhanced", map[string]interface{}{
		"urgencyLevel": decision.UrgencyLevel,
	})
	return enhanced, nil
}

// parseOutput extracts the JSON object from the completion, tolerating
// leading/trailing prose and code fences.
func parseOutput(completion string) (*Enhanced, error) {
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start < 0 || end <= start {
		return nil, errors.NewNarrativeMalformedError("no JSON object in model output")
	}

	var enhanced Enhanced
	if err := json.Unmarshal([]byte(completion[start:end+1]), &enhanced); err != nil {
		return nil, errors.NewNarrativeMalformedError(err.Error())
	}
	return &enhanced, nil
}

// checkContract enforces the output rules: a non-empty rationale, and no
// causes introduced on the emergency path.
func checkContract(decision *Context, enhanced *Enhanced) error {
	if strings.TrimSpace(enhanced.RiskRationale) == "" {
		return errors.NewNarrativeMalformedError("empty rationale")
	}
	if decision.UrgencyLevel == "emergency" && len(enhanced.PossibleCauses) > 0 {
		return errors.NewNarrativeMalformedError("causes introduced on emergency decision")
	}
	if len(decision.PossibleCauses) == 0 && len(enhanced.PossibleCauses) > 0 {
		return errors.NewNarrativeMalformedError("causes invented by model")
	}
	return nil
}
