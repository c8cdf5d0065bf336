package narrative

// Context is the decision material handed to the external model. It carries
// no session identifiers and is only built after redaction found nothing.
type Context struct {
	UrgencyLevel   string   `json:"urgencyLevel"`
	RiskRationale  string   `json:"riskRationale"`
	PossibleCauses []string `json:"possibleCauses,omitempty"`
	SupportTexts   []string `json:"supportTexts,omitempty"`
}

// Enhanced is the model's rewrite. The decision itself is never touched;
// only these two narrative fields may be swapped in, and only after the
// output contract checks pass.
type Enhanced struct {
	RiskRationale  string   `json:"riskRationale"`
	PossibleCauses []string `json:"possibleCauses,omitempty"`
}
