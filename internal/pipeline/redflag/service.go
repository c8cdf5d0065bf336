// Package redflag checks extracted symptom keywords against the fixed
// emergency vocabulary.
package redflag

import "github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/features"

// EmergencyVocabulary is the fixed red-flag list. Any intersection with the
// extracted symptom keywords is a hard emergency override downstream.
var EmergencyVocabulary = map[string]struct{}{
	"chest pain":            {},
	"shortness of breath":   {},
	"difficulty breathing":  {},
	"loss of consciousness": {},
	"fainted":               {},
	"seizure":               {},
	"stroke":                {},
	"slurred speech":        {},
	"uncontrolled bleeding": {},
	"severe bleeding":       {},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Detect returns the red-flag keywords found, in the order they appear in
// the feature set. A non-empty result means emergency.
func (s *Service) Detect(f *features.StructuredFeatures) []string {
	if f == nil {
		return nil
	}
	var flags []string
	for _, kw := range f.SymptomKeywords {
		if _, ok := EmergencyVocabulary[kw]; ok {
			flags = append(flags, kw)
		}
	}
	return flags
}
