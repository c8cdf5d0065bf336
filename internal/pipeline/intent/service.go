// Package intent routes a turn to the triage, medication-safety or
// report-interpretation branch of the pipeline.
package intent

import (
	"strings"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"
)

// Intent is the routing verdict for one turn.
type Intent string

const (
	IntentTriage  Intent = "triage"
	IntentRx      Intent = "rx"
	IntentReport  Intent = "report"
	IntentUnknown Intent = "unknown"
)

var rxKeywords = []string{
	"medication", "medicine", "drug", "prescription", "prescribed",
	"tablet", "pill", "dose", "dosage", "interaction", "pharmacy",
}

var reportKeywords = []string{
	"report", "lab result", "lab test", "blood test", "test result",
	"x-ray", "ultrasound", "scan", "cbc", "hemoglobin", "cholesterol",
}

var genericTriageKeywords = []string{
	"pain", "fever", "hurt", "sick", "symptom", "emergency", "unwell", "ache",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Classify applies the fixed priority order, first match wins. A detected
// symptom always outranks lexical medication/report mentions: symptom safety
// triage takes precedence even when the message reads like a drug question.
func (s *Service) Classify(f *features.StructuredFeatures, redactedText string) Intent {
	if f != nil && len(f.SymptomKeywords) > 0 {
		return IntentTriage
	}

	lower := strings.ToLower(redactedText)

	if containsAny(lower, rxKeywords) {
		return IntentRx
	}
	if containsAny(lower, reportKeywords) {
		return IntentReport
	}
	if containsAny(lower, genericTriageKeywords) {
		return IntentTriage
	}
	return IntentUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
