package triage

import "github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"

// UrgencyLevel is the closed urgency enum, strictly ordered by severity.
type UrgencyLevel string

const (
	UrgencyEmergency   UrgencyLevel = "emergency"
	UrgencyUrgentCare  UrgencyLevel = "urgent_care"
	UrgencyPrimaryCare UrgencyLevel = "primary_care"
	UrgencySelfCare    UrgencyLevel = "self_care"
)

// rank orders the levels for tie-breaking; higher is more severe.
var rank = map[UrgencyLevel]int{
	UrgencySelfCare:    0,
	UrgencyPrimaryCare: 1,
	UrgencyUrgentCare:  2,
	UrgencyEmergency:   3,
}

// MoreSevere reports whether a outranks b.
func MoreSevere(a, b UrgencyLevel) bool {
	return rank[a] > rank[b]
}

// SystemAction marks whether the emergency override path fired.
type SystemAction string

const (
	SystemActionNone           SystemAction = "none"
	SystemActionCircuitBreaker SystemAction = "emergency_circuit_breaker"
)

// RecommendedAction is the primary/secondary action pair per branch.
type RecommendedAction struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// Input is the assembled feature set the decision tree consumes.
type Input struct {
	Features *features.StructuredFeatures
}

// Decision is the deterministic triage outcome. PossibleCauses is never
// populated together with red flags: the emergency branch suppresses it.
type Decision struct {
	UrgencyLevel      UrgencyLevel      `json:"urgencyLevel"`
	RedFlagsDetected  []string          `json:"redFlagsDetected,omitempty"`
	RiskRationale     string            `json:"riskRationale"`
	PossibleCauses    []string          `json:"possibleCauses,omitempty"`
	RecommendedAction RecommendedAction `json:"recommendedAction"`
	SystemAction      SystemAction      `json:"systemAction"`
}
