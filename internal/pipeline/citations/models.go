package citations

// Citation is one approved reference chunk backing a piece of guidance.
type Citation struct {
	SourceID    string   `json:"sourceId"`
	ChunkID     string   `json:"chunkId"`
	SupportText string   `json:"supportText"`
	Tags        []string `json:"tags"`
}

// Verification is the gate's verdict for one decision.
type Verification struct {
	Verified  bool       `json:"verified"`
	Citations []Citation `json:"citations,omitempty"`
	// CatalogVersion identifies which reference set produced the verdict.
	CatalogVersion string `json:"catalogVersion"`
}

// FallbackText replaces any clinical rationale that could not be verified
// against the approved reference set. It is the only narrative allowed
// through a failed gate.
const FallbackText = "Unable to verify guidance against approved sources; please seek clinician advice."
