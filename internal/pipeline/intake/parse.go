package intake

import (
	"regexp"
	"strconv"
	"strings"
)

// Signals are the structured values harvested from one turn's free text.
// Any turn may answer a still-pending field in passing; harvesting runs on
// every turn, not only for the field currently being asked.
type Signals struct {
	Severity      *int
	DurationHours *float64
	AgeYears      *int
	SexAtBirth    string
	Pregnant      *bool
	SkipCurrent   bool
}

var (
	// Whole-word match only; "skipping meals made it worse" is an answer,
	// not a request to skip the question.
	skipRe = regexp.MustCompile(`\b(?:skip|not sure|unknown|don'?t know|no idea|idk|n/a)\b`)

	severityOutOfTenRe = regexp.MustCompile(`\b(\d{1,2})\s*/\s*10\b`)
	bareNumberRe       = regexp.MustCompile(`^\s*(\d{1,3})\s*$`)
	durationRe         = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(hours?|hrs?|days?|weeks?)\b`)
	agePhraseRe        = regexp.MustCompile(`(?i)\b(?:i am|i'm)\s+(\d{1,3})\b|\b(\d{1,3})\s*(?:years?\s*old|yrs?\s*old|yo)\b|\bage\s*:?\s*(\d{1,3})\b`)
	femaleRe           = regexp.MustCompile(`\bfemale\b`)
	maleRe             = regexp.MustCompile(`\bmale\b`)
)

// ParseSignals extracts severity, duration, age, sex and pregnancy signals
// from free text. Bare numbers are only meaningful relative to the field
// currently awaited: 1-10 answers a severity question, 0-120 an age question.
func ParseSignals(text string, awaiting AwaitingField) Signals {
	var sig Signals
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return sig
	}

	if awaiting == AwaitSeverity || awaiting == AwaitDuration || awaiting == AwaitAge {
		sig.SkipCurrent = skipRe.MatchString(lower)
	}

	// Severity: word scale, then "N/10", then a bare number when asked.
	switch {
	case strings.Contains(lower, "severe") || strings.Contains(lower, "intense"):
		sig.Severity = intPtr(8)
	case strings.Contains(lower, "moderate"):
		sig.Severity = intPtr(5)
	case strings.Contains(lower, "mild"):
		sig.Severity = intPtr(3)
	default:
		if m := severityOutOfTenRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v >= 1 && v <= 10 {
				sig.Severity = &v
			}
		} else if awaiting == AwaitSeverity {
			if m := bareNumberRe.FindStringSubmatch(lower); m != nil && len(m[1]) <= 2 {
				if v, err := strconv.Atoi(m[1]); err == nil && v >= 1 && v <= 10 {
					sig.Severity = &v
				}
			}
		}
	}

	if m := durationRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			hours := v
			switch {
			case strings.HasPrefix(strings.ToLower(m[2]), "d"):
				hours = v * 24
			case strings.HasPrefix(strings.ToLower(m[2]), "w"):
				hours = v * 168
			}
			if hours >= 0 && hours <= 8760 {
				sig.DurationHours = &hours
			}
		}
	}

	if m := agePhraseRe.FindStringSubmatch(lower); m != nil {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if v, err := strconv.Atoi(g); err == nil && v >= 0 && v <= 120 {
				sig.AgeYears = &v
			}
			break
		}
	} else if awaiting == AwaitAge {
		if m := bareNumberRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v >= 0 && v <= 120 {
				sig.AgeYears = &v
			}
		}
	}

	if femaleRe.MatchString(lower) {
		sig.SexAtBirth = "female"
	} else if maleRe.MatchString(lower) {
		sig.SexAtBirth = "male"
	}

	if strings.Contains(lower, "pregnant") {
		pregnant := !strings.Contains(lower, "not pregnant")
		sig.Pregnant = &pregnant
	}

	return sig
}

// looksLikeSymptomText is a loose test for whether a turn can serve as the
// symptom description: it carries letters or contributed keywords.
func looksLikeSymptomText(text string, keywords []string) bool {
	if len(keywords) > 0 {
		return true
	}
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func intPtr(v int) *int { return &v }
