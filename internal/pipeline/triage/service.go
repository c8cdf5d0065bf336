// Package triage holds the deterministic urgency decision tree.
package triage

import (
	"fmt"
	"strings"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
)

// Fixed decision thresholds. These are contractual boundaries: severity at
// or above 8 is urgent care, duration at or above 72 hours is primary care.
const (
	severityUrgentThreshold  = 8
	durationPrimaryThreshold = 72.0
)

type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		logger: log.With(map[string]interface{}{"stage": "triage"}),
	}
}

// Decide evaluates the branches in fixed order: red flags, then severity,
// then duration, then self care. Evaluation order matters; a severity of 9
// with a duration of 100 hours is urgent care, not primary care.
func (s *Service) Decide(in *Input, redFlags []string) *Decision {
	f := in.Features

	if len(redFlags) > 0 {
		d := &Decision{
			UrgencyLevel:     UrgencyEmergency,
			RedFlagsDetected: redFlags,
			RiskRationale: fmt.Sprintf(
				"Emergency indicators detected: %s. These symptoms need immediate medical attention.",
				strings.Join(redFlags, ", ")),
			RecommendedAction: RecommendedAction{
				Primary:   "Call emergency services now.",
				Secondary: "Contact someone nearby so you are not alone.",
			},
			SystemAction: SystemActionCircuitBreaker,
		}
		s.logDecision(d)
		return d
	}

	if f.Severity != nil && *f.Severity >= severityUrgentThreshold {
		d := &Decision{
			UrgencyLevel: UrgencyUrgentCare,
			RiskRationale: fmt.Sprintf(
				"Reported severity %d/10 is high%s. Same-day assessment is advised.",
				*f.Severity, keywordClause(f.SymptomKeywords)),
			PossibleCauses: causesFor(f.SymptomKeywords),
			RecommendedAction: RecommendedAction{
				Primary:   "Visit an urgent care facility today.",
				Secondary: "If symptoms worsen suddenly, call emergency services.",
			},
			SystemAction: SystemActionNone,
		}
		s.logDecision(d)
		return d
	}

	if f.DurationHours != nil && *f.DurationHours >= durationPrimaryThreshold {
		d := &Decision{
			UrgencyLevel: UrgencyPrimaryCare,
			RiskRationale: fmt.Sprintf(
				"Symptoms persisting for %.0f hours%s warrant a routine clinical review.",
				*f.DurationHours, keywordClause(f.SymptomKeywords)),
			PossibleCauses: causesFor(f.SymptomKeywords),
			RecommendedAction: RecommendedAction{
				Primary:   "Book an appointment with a primary care clinician this week.",
				Secondary: "Keep a note of any new or worsening symptoms.",
			},
			SystemAction: SystemActionNone,
		}
		s.logDecision(d)
		return d
	}

	d := &Decision{
		UrgencyLevel: UrgencySelfCare,
		RiskRationale: fmt.Sprintf(
			"No emergency indicators and no high-risk severity or duration%s. Self care is reasonable for now.",
			keywordClause(f.SymptomKeywords)),
		PossibleCauses: causesFor(f.SymptomKeywords),
		RecommendedAction: RecommendedAction{
			Primary:   "Rest, stay hydrated and monitor your symptoms.",
			Secondary: "Seek care if symptoms persist beyond a few days or worsen.",
		},
		SystemAction: SystemActionNone,
	}
	s.logDecision(d)
	return d
}

func keywordClause(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return fmt.Sprintf(" (reported: %s)", strings.Join(keywords, ", "))
}

func (s *Service) logDecision(d *Decision) {
	s.logger.Info("triage decision", map[string]interface{}{
		"urgencyLevel": string(d.UrgencyLevel),
		"redFlags":     len(d.RedFlagsDetected),
		"systemAction": string(d.SystemAction),
	})
}
