// Package pipeline orchestrates the clinical safety stages for one request:
// redaction first, then feature extraction, routing, triage dialogue or the
// medication and report branches, citation gating and optional narrative
// enhancement.
package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/metrics"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/observability"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/citations"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/intake"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/intent"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/narrative"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/redact"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/redflag"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/report"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/rx"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/triage"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/validate"
)

const unknownIntentMessage = "I can help with symptom triage, medication safety questions, or understanding a medical report. What would you like to do?"

const rxListPrompt = "To check your medications I need the full list. Please share every medicine you take, and the new prescription if there is one."

// Pipeline wires the stages together. All stages are safe for concurrent
// use; per-session state lives only in the intake store.
type Pipeline struct {
	redactor *redact.Service
	features *features.Service
	intents  *intent.Service
	redflags *redflag.Service
	triager  *triage.Service
	intake   *intake.Service
	rx       *rx.Service
	reports  *report.Service
	gate     *citations.Gate
	enhancer *narrative.Enhancer
	obs      *observability.Observability

	maxTextLength int
	logger        logger.Logger
}

// New builds the full pipeline. enhancer and obs may be nil; narrative
// enhancement is then skipped and only the Prometheus metrics are recorded.
func New(store intake.Store, catalog *citations.Catalog, enhancer *narrative.Enhancer, obs *observability.Observability, maxTextLength int, log logger.Logger) *Pipeline {
	return &Pipeline{
		redactor:      redact.NewService(),
		features:      features.NewService(),
		intents:       intent.NewService(),
		redflags:      redflag.NewService(),
		triager:       triage.NewService(log),
		intake:        intake.NewService(store, log),
		rx:            rx.NewService(log),
		reports:       report.NewService(log),
		gate:          citations.NewGate(catalog, log),
		enhancer:      enhancer,
		obs:           obs,
		maxTextLength: maxTextLength,
		logger:        log.With(map[string]interface{}{"component": "pipeline"}),
	}
}

// RunTurn routes one conversational turn. A pending triage dialogue holds
// the session in the triage branch until it completes or the caller clearly
// switches topic, which abandons the pending session.
func (p *Pipeline) RunTurn(ctx context.Context, turn RawTurn) (*TurnResponse, error) {
	if err := p.validateTurn(turn); err != nil {
		return nil, err
	}

	red := p.redactor.Apply(turn.Text)
	p.countRedactions(red)

	feats := p.features.Extract(red.SanitizedText, features.Hints{
		AgeYears:      turn.AgeYears,
		Severity:      turn.Severity,
		DurationHours: turn.DurationHours,
	})
	routed := p.intents.Classify(feats, red.SanitizedText)

	pending, err := p.intake.HasPending(ctx, turn.SessionID)
	if err != nil {
		return nil, err
	}

	switch {
	case routed == intent.IntentTriage:
		return p.runTriage(ctx, turn, red, feats, time.Now())
	case pending && routed == intent.IntentUnknown:
		// Mid-dialogue answers like "7" or "skip" carry no symptom or
		// topic keywords; they belong to the open triage session.
		return p.runTriage(ctx, turn, red, feats, time.Now())
	case routed == intent.IntentRx:
		if pending {
			if err := p.intake.Abandon(ctx, turn.SessionID); err != nil {
				return nil, err
			}
		}
		if len(turn.Medications) > 0 {
			// The caller already attached its medication list; run the
			// safety check instead of asking for it.
			out, err := p.RunMedicationCheck(ctx, MedicationRequest{
				Medications:     turn.Medications,
				Pregnant:        turn.Pregnant != nil && *turn.Pregnant,
				KnownConditions: turn.KnownConditions,
			})
			if err != nil {
				return nil, err
			}
			return &TurnResponse{Intent: intent.IntentRx, IdentifierLabels: red.Labels, Medication: out}, nil
		}
		p.observe(ctx, intent.IntentRx, time.Now())
		return &TurnResponse{Intent: intent.IntentRx, IdentifierLabels: red.Labels, Message: rxListPrompt}, nil
	case routed == intent.IntentReport:
		if pending {
			if err := p.intake.Abandon(ctx, turn.SessionID); err != nil {
				return nil, err
			}
		}
		start := time.Now()
		outcome := p.analyzeReport(red.SanitizedText)
		p.observe(ctx, intent.IntentReport, start)
		return &TurnResponse{Intent: intent.IntentReport, IdentifierLabels: red.Labels, Report: outcome}, nil
	default:
		p.observe(ctx, intent.IntentUnknown, time.Now())
		return &TurnResponse{Intent: intent.IntentUnknown, IdentifierLabels: red.Labels, Message: unknownIntentMessage}, nil
	}
}

// RunTriageTurn forces the triage branch regardless of classification.
func (p *Pipeline) RunTriageTurn(ctx context.Context, turn RawTurn) (*TurnResponse, error) {
	if err := p.validateTurn(turn); err != nil {
		return nil, err
	}

	red := p.redactor.Apply(turn.Text)
	p.countRedactions(red)

	feats := p.features.Extract(red.SanitizedText, features.Hints{
		AgeYears:      turn.AgeYears,
		Severity:      turn.Severity,
		DurationHours: turn.DurationHours,
	})
	return p.runTriage(ctx, turn, red, feats, time.Now())
}

func (p *Pipeline) runTriage(ctx context.Context, turn RawTurn, red *redact.Result, feats *features.StructuredFeatures, start time.Time) (*TurnResponse, error) {
	// Red flags bypass the dialogue entirely, even when a clarification
	// question is outstanding. Nothing is worth another question then.
	if flags := p.redflags.Detect(feats); len(flags) > 0 {
		if err := p.intake.Abandon(ctx, turn.SessionID); err != nil {
			return nil, err
		}
		decision := p.triager.Decide(&triage.Input{Features: feats}, flags)
		outcome := p.finishTriage(ctx, red, decision)
		p.observe(ctx, intent.IntentTriage, start)
		return &TurnResponse{Intent: intent.IntentTriage, IdentifierLabels: red.Labels, Triage: outcome}, nil
	}

	dlg, err := p.intake.ProcessTurn(ctx, turn.SessionID, intake.TurnInfo{
		Text:          red.SanitizedText,
		Keywords:      feats.SymptomKeywords,
		Severity:      turn.Severity,
		DurationHours: turn.DurationHours,
		AgeYears:      turn.AgeYears,
		SexAtBirth:    turn.SexAtBirth,
		Pregnant:      turn.Pregnant,
	})
	if err != nil {
		return nil, err
	}
	if !dlg.Ready() {
		p.observe(ctx, intent.IntentTriage, start)
		return &TurnResponse{
			Intent:           intent.IntentTriage,
			IdentifierLabels: red.Labels,
			Question:         dlg.Question,
			AwaitingField:    string(dlg.Awaiting),
		}, nil
	}

	st := dlg.Assembled
	final := p.features.Extract(st.Text, features.Hints{
		AgeYears:      st.AgeYears,
		Severity:      st.Severity,
		DurationHours: st.DurationHours,
	})
	flags := p.redflags.Detect(final)
	decision := p.triager.Decide(&triage.Input{Features: final}, flags)
	outcome := p.finishTriage(ctx, red, decision)
	p.observe(ctx, intent.IntentTriage, start)
	return &TurnResponse{Intent: intent.IntentTriage, IdentifierLabels: red.Labels, Triage: outcome}, nil
}

// finishTriage gates the decision and, when permitted, swaps in the
// enhanced narrative. The structured decision fields never change here.
func (p *Pipeline) finishTriage(ctx context.Context, red *redact.Result, decision *triage.Decision) *TriageOutcome {
	verification := p.gate.Verify([]string{"triage", string(decision.UrgencyLevel)})
	metrics.TriageDecisions.WithLabelValues(string(decision.UrgencyLevel)).Inc()

	outcome := &TriageOutcome{
		Decision:       *decision,
		Verified:       verification.Verified,
		Citations:      verification.Citations,
		CatalogVersion: verification.CatalogVersion,
	}
	if !verification.Verified {
		outcome.RiskRationale = citations.FallbackText
		outcome.PossibleCauses = nil
		return outcome
	}

	if p.enhancer == nil {
		return outcome
	}
	if red.HasIdentifiers() {
		// Identifiers in the turn veto any external model call.
		metrics.NarrativeFallbacks.WithLabelValues("identifiers_present").Inc()
		return outcome
	}

	enhanced, err := p.enhancer.Enhance(ctx, &narrative.Context{
		UrgencyLevel:   string(decision.UrgencyLevel),
		RiskRationale:  decision.RiskRationale,
		PossibleCauses: decision.PossibleCauses,
		SupportTexts:   supportTexts(verification.Citations),
	})
	if err != nil {
		metrics.NarrativeFallbacks.WithLabelValues(fallbackReason(err)).Inc()
		p.logger.Warn("narrative enhancement failed, keeping deterministic text", map[string]interface{}{
			"error": err.Error(),
		})
		return outcome
	}

	outcome.RiskRationale = enhanced.RiskRationale
	if len(outcome.PossibleCauses) > 0 {
		outcome.PossibleCauses = enhanced.PossibleCauses
	}
	outcome.NarrativeApplied = true
	return outcome
}

// RunMedicationCheck runs the medication safety branch on a structured
// medication list.
func (p *Pipeline) RunMedicationCheck(ctx context.Context, req MedicationRequest) (*MedicationOutcome, error) {
	if err := validate.MedicationCheck(req.Medications, req.NewPrescription); err != nil {
		return nil, err
	}
	start := time.Now()

	result := p.rx.Check(req.Medications, req.NewPrescription, req.Pregnant, req.KnownConditions)

	tags := []string{"rx"}
	for _, issue := range result.Issues {
		tags = append(tags, string(issue.Kind))
	}
	verification := p.gate.Verify(tags)

	outcome := &MedicationOutcome{
		Result:         *result,
		Verified:       verification.Verified,
		Citations:      verification.Citations,
		CatalogVersion: verification.CatalogVersion,
	}
	if !verification.Verified {
		// Structured issues stay; only the prose summary is withheld.
		outcome.Summary = citations.FallbackText
	}
	p.observe(ctx, intent.IntentRx, start)
	return outcome, nil
}

// RunReportAnalysis runs the report interpretation branch. Structured
// values skip parsing entirely; free text is redacted and parsed first.
func (p *Pipeline) RunReportAnalysis(ctx context.Context, req ReportRequest) (*ReportOutcome, error) {
	if err := validate.ReportInput(req.Text, len(req.Values), p.maxTextLength); err != nil {
		return nil, err
	}
	start := time.Now()

	if len(req.Values) > 0 {
		outcome := p.gateReport(p.reports.Analyze(req.Values))
		p.observe(ctx, intent.IntentReport, start)
		return outcome, nil
	}

	red := p.redactor.Apply(req.Text)
	p.countRedactions(red)

	outcome := p.analyzeReport(red.SanitizedText)
	p.observe(ctx, intent.IntentReport, start)
	return outcome, nil
}

func (p *Pipeline) analyzeReport(sanitizedText string) *ReportOutcome {
	return p.gateReport(p.reports.AnalyzeText(sanitizedText))
}

func (p *Pipeline) gateReport(result *report.Result) *ReportOutcome {
	verification := p.gate.Verify([]string{"report"})

	outcome := &ReportOutcome{
		Result:         *result,
		Verified:       verification.Verified,
		Citations:      verification.Citations,
		CatalogVersion: verification.CatalogVersion,
	}
	if !verification.Verified {
		outcome.Summary = citations.FallbackText
		outcome.RecommendedQuestions = nil
	}
	return outcome
}

func (p *Pipeline) validateTurn(turn RawTurn) error {
	return validate.Turn(validate.TurnInput{
		Text:          turn.Text,
		Severity:      turn.Severity,
		DurationHours: turn.DurationHours,
		AgeYears:      turn.AgeYears,
	}, p.maxTextLength)
}

func (p *Pipeline) countRedactions(red *redact.Result) {
	for _, label := range red.Labels {
		metrics.IdentifiersRedacted.WithLabelValues(label).Inc()
	}
}

func (p *Pipeline) observe(ctx context.Context, routed intent.Intent, start time.Time) {
	elapsed := time.Since(start)
	metrics.TurnsProcessed.WithLabelValues(string(routed)).Inc()
	metrics.TurnDuration.WithLabelValues(string(routed)).Observe(elapsed.Seconds())
	if p.obs != nil {
		p.obs.RecordTurnProcessed(ctx, string(routed))
		p.obs.RecordTurnDuration(ctx, elapsed, string(routed))
	}
}

func supportTexts(cits []citations.Citation) []string {
	out := make([]string, 0, len(cits))
	for _, c := range cits {
		out = append(out, c.SupportText)
	}
	return out
}

func fallbackReason(err error) string {
	var stdErr *errors.StandardError
	if stderrors.As(err, &stdErr) {
		switch stdErr.Code {
		case errors.ErrCodeNarrativeTimeout:
			return "timeout"
		case errors.ErrCodeNarrativeMalformed:
			return "malformed"
		}
	}
	return "error"
}
