// Package redact scrubs direct personal identifiers from free text before
// any other pipeline stage sees it.
package redact

import (
	"fmt"
	"regexp"
	"strings"
)

// Identifier category labels, reported in Result.Labels.
const (
	LabelEmail     = "email"
	LabelPhonePK   = "phone_pk"
	LabelPhone     = "phone"
	LabelCNIC      = "cnic"
	LabelMRN       = "mrn"
	LabelGovtID    = "govt_id"
	LabelAddress   = "address"
	LabelDOB       = "dob"
	LabelNameIntro = "name_intro"
)

type rule struct {
	label   string
	pattern *regexp.Regexp
}

// Service applies an ordered list of identifier patterns. Order matters:
// the CNIC pattern must run before generic phone matching or the phone rule
// eats part of the 13-digit grouping.
type Service struct {
	rules []rule
}

func NewService() *Service {
	return &Service{
		rules: []rule{
			{LabelEmail, regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
			{LabelCNIC, regexp.MustCompile(`\b\d{5}-\d{7}-\d\b`)},
			{LabelPhonePK, regexp.MustCompile(`(?:\+92|0092)[- ]?3\d{2}[- ]?\d{7}\b|\b03\d{2}[- ]?\d{7}\b`)},
			{LabelPhone, regexp.MustCompile(`\+?\d{1,3}[-. ]?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b|\b\d{10,12}\b`)},
			{LabelMRN, regexp.MustCompile(`(?i)\b(?:mrn|medical record(?: number)?)\s*[:#]?\s*[A-Za-z0-9-]+`)},
			{LabelGovtID, regexp.MustCompile(`\b[A-Z]{2}\d{7}\b`)},
			{LabelAddress, regexp.MustCompile(`(?i)\b(?:house|flat|apartment|street|block|sector)\s+(?:no\.?\s*)?#?\s*[A-Za-z0-9-]+`)},
			{LabelDOB, regexp.MustCompile(`(?i)\b(?:born on|date of birth|dob)\s*:?\s*\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}`)},
			{LabelNameIntro, regexp.MustCompile(`(?i)\bmy name is\s+[A-Za-z]+(?:\s+[A-Za-z]+)?`)},
		},
	}
}

// Apply replaces every identifier match with a [REDACTED:<LABEL>] token and
// records each category once. Applying it to already-redacted text changes
// nothing: the tokens themselves match no pattern.
func (s *Service) Apply(text string) *Result {
	sanitized := text
	var labels []string

	for _, r := range s.rules {
		if !r.pattern.MatchString(sanitized) {
			continue
		}
		token := fmt.Sprintf("[REDACTED:%s]", strings.ToUpper(r.label))
		sanitized = r.pattern.ReplaceAllString(sanitized, token)
		labels = append(labels, r.label)
	}

	return &Result{
		SanitizedText: sanitized,
		Labels:        labels,
	}
}
