package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_turns_processed_total",
			Help: "Total number of turns processed, by routed intent",
		},
		[]string{"intent"},
	)

	TriageDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_triage_decisions_total",
			Help: "Total number of triage decisions, by urgency level",
		},
		[]string{"urgency_level"},
	)

	IdentifiersRedacted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_identifiers_redacted_total",
			Help: "Total number of identifier categories redacted, by label",
		},
		[]string{"label"},
	)

	CitationGateVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_citation_gate_verdicts_total",
			Help: "Citation gate outcomes, verified or degraded",
		},
		[]string{"verdict"},
	)

	NarrativeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_narrative_fallbacks_total",
			Help: "Narrative enhancements that fell back to deterministic text, by reason",
		},
		[]string{"reason"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_turn_duration_seconds",
			Help: "Duration of turn processing in seconds",
		},
		[]string{"intent"},
	)
)
