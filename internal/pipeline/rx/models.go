package rx

// IssueKind is the closed set of medication-safety findings.
type IssueKind string

const (
	KindInteraction      IssueKind = "interaction"
	KindContraindication IssueKind = "contraindication"
	KindDuplication      IssueKind = "duplication"
	KindDoseError        IssueKind = "dose_error"
	KindMissingInfo      IssueKind = "missing_info"
)

// Severity is the closed ordering of how serious an issue is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityCaution  Severity = "caution"
	SeveritySerious  Severity = "serious"
	SeverityCritical Severity = "critical"
)

// NormalizedDrug is a free-text medication name resolved against the fixed
// name-to-code table.
type NormalizedDrug struct {
	CanonicalName string `json:"canonicalName"`
	Code          string `json:"code"`
}

// Issue is a single medication-safety finding. Checks accumulate; one
// request can yield any mix of kinds.
type Issue struct {
	Kind           IssueKind `json:"kind"`
	Severity       Severity  `json:"severity"`
	DrugsInvolved  []string  `json:"drugsInvolved"`
	Mechanism      string    `json:"mechanism"`
	Management     string    `json:"management"`
	EvidenceSource string    `json:"evidenceSource"`
}

// Result is the outcome of one medication check. UnknownMeds lists names the
// table could not resolve; they surface as a missing_info issue, never
// silently dropped.
type Result struct {
	Issues      []Issue          `json:"issues"`
	Normalized  []NormalizedDrug `json:"normalized"`
	UnknownMeds []string         `json:"unknownMeds,omitempty"`
	Summary     string           `json:"summary"`
}
