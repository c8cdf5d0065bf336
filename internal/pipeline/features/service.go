// Package features turns redacted text plus optional numeric hints into a
// structured, de-identified feature set.
package features

import "strings"

// SymptomVocabulary is the closed keyword list. Matching is verbatim,
// case-insensitive substring search; there is no stemming or fuzzy logic.
// Multi-word entries come first so "chest pain" is credited before "pain"
// adjacent vocab would be (order also drives dedup stability).
var SymptomVocabulary = []string{
	"chest pain",
	"shortness of breath",
	"difficulty breathing",
	"loss of consciousness",
	"uncontrolled bleeding",
	"severe bleeding",
	"slurred speech",
	"abdominal pain",
	"stomach ache",
	"blurred vision",
	"sore throat",
	"back pain",
	"joint pain",
	"fainted",
	"seizure",
	"stroke",
	"headache",
	"fever",
	"cough",
	"nausea",
	"vomiting",
	"diarrhea",
	"dizziness",
	"dizzy",
	"fatigue",
	"rash",
	"palpitations",
	"numbness",
	"swelling",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Extract scans the redacted text for vocabulary hits and merges the numeric
// hints. Output size is bounded by the vocabulary regardless of input length.
func (s *Service) Extract(redactedText string, hints Hints) *StructuredFeatures {
	lower := strings.ToLower(redactedText)

	var keywords []string
	seen := make(map[string]struct{}, len(SymptomVocabulary))
	for _, kw := range SymptomVocabulary {
		if _, dup := seen[kw]; dup {
			continue
		}
		if strings.Contains(lower, kw) {
			keywords = append(keywords, kw)
			seen[kw] = struct{}{}
		}
	}

	out := &StructuredFeatures{
		SymptomKeywords: keywords,
		Severity:        hints.Severity,
		DurationHours:   hints.DurationHours,
	}

	if hints.AgeYears != nil {
		out.AgeBand = BandForAge(*hints.AgeYears)
	}

	return out
}

// BandForAge maps exact years to the coarse band.
func BandForAge(years int) AgeBand {
	switch {
	case years < 18:
		return AgeBandChild
	case years < 65:
		return AgeBandAdult
	default:
		return AgeBandOlder
	}
}
