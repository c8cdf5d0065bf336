package redact

// Result holds sanitized text plus the identifier categories that were hit.
// Labels carries each category at most once regardless of match count.
type Result struct {
	SanitizedText string   `json:"sanitizedText"`
	Labels        []string `json:"identifierLabelsFound"`
}

// HasIdentifiers reports whether any identifier category matched. A true
// value vetoes every external-model call for the turn.
func (r *Result) HasIdentifiers() bool {
	return len(r.Labels) > 0
}
