package pipeline

import (
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/citations"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/intent"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/report"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/rx"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/triage"
)

// RawTurn is one caller message plus any structured hints supplied with it.
// Medications and KnownConditions let a caller attach its records to the
// turn; an rx-classified turn carrying medications runs the safety check
// directly instead of asking for the list.
type RawTurn struct {
	SessionID       string   `json:"sessionId"`
	Text            string   `json:"text"`
	Severity        *int     `json:"severity,omitempty"`
	DurationHours   *float64 `json:"durationHours,omitempty"`
	AgeYears        *int     `json:"ageYears,omitempty"`
	SexAtBirth      string   `json:"sexAtBirth,omitempty"`
	Pregnant        *bool    `json:"pregnant,omitempty"`
	KnownConditions []string `json:"knownConditions,omitempty"`
	Medications     []string `json:"medications,omitempty"`
}

// MedicationRequest is a structured medication safety check.
type MedicationRequest struct {
	Medications     []string `json:"medications"`
	NewPrescription string   `json:"newPrescription,omitempty"`
	Pregnant        bool     `json:"pregnant,omitempty"`
	KnownConditions []string `json:"knownConditions,omitempty"`
}

// ReportRequest is a report analysis request: free text to parse, or
// already-structured values. Exactly one of the two is supplied.
type ReportRequest struct {
	Text   string         `json:"text,omitempty"`
	Values []report.Value `json:"values,omitempty"`
}

// TriageOutcome is a triage decision plus its verification evidence. The
// embedded decision fields are already gated: an unverified decision keeps
// its urgency and actions but carries only the fixed fallback narrative.
type TriageOutcome struct {
	triage.Decision
	Verified         bool                 `json:"verified"`
	Citations        []citations.Citation `json:"citations,omitempty"`
	CatalogVersion   string               `json:"catalogVersion,omitempty"`
	NarrativeApplied bool                 `json:"narrativeApplied"`
}

// MedicationOutcome is a gated medication check result.
type MedicationOutcome struct {
	rx.Result
	Verified       bool                 `json:"verified"`
	Citations      []citations.Citation `json:"citations,omitempty"`
	CatalogVersion string               `json:"catalogVersion,omitempty"`
}

// ReportOutcome is a gated report analysis result.
type ReportOutcome struct {
	report.Result
	Verified       bool                 `json:"verified"`
	Citations      []citations.Citation `json:"citations,omitempty"`
	CatalogVersion string               `json:"catalogVersion,omitempty"`
}

// TurnResponse is the single response shape for conversational turns.
// Exactly one of Question, Triage, Medication, Report or Message is
// populated.
type TurnResponse struct {
	Intent           intent.Intent      `json:"intent"`
	IdentifierLabels []string           `json:"identifierLabelsFound,omitempty"`
	Question         string             `json:"question,omitempty"`
	AwaitingField    string             `json:"awaitingField,omitempty"`
	Triage           *TriageOutcome     `json:"triage,omitempty"`
	Medication       *MedicationOutcome `json:"medication,omitempty"`
	Report           *ReportOutcome     `json:"report,omitempty"`
	Message          string             `json:"message,omitempty"`
}
