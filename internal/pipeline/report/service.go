// Package report parses lab values and flags out-of-range results against
// their reference ranges.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
)

// lineRe is the fixed line grammar: <name> : <number> [<unit>] [(<low>-<high>)]
// Lines that do not match are skipped, not errored.
var lineRe = regexp.MustCompile(
	`^\s*([A-Za-z][A-Za-z0-9 /%().+-]*?)\s*[:=]\s*(-?\d+(?:\.\d+)?)\s*([A-Za-zµ%][A-Za-z0-9µ%/.^-]*)?\s*(?:\(\s*(-?\d+(?:\.\d+)?)\s*[-–]\s*(-?\d+(?:\.\d+)?)\s*\))?\s*$`)

type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		logger: log.With(map[string]interface{}{"stage": "report"}),
	}
}

// AnalyzeText parses raw report text line by line, then analyzes whatever
// matched the grammar.
func (s *Service) AnalyzeText(rawText string) *Result {
	return s.Analyze(ParseText(rawText))
}

// ParseText applies the line grammar to each line of raw text.
func ParseText(rawText string) []Value {
	var values []Value
	for _, line := range strings.Split(rawText, "\n") {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		v := Value{
			Name:  strings.TrimSpace(m[1]),
			Value: num,
			Unit:  m[3],
		}
		if m[4] != "" && m[5] != "" {
			low, errLow := strconv.ParseFloat(m[4], 64)
			high, errHigh := strconv.ParseFloat(m[5], 64)
			if errLow == nil && errHigh == nil {
				v.ReferenceRange = &ReferenceRange{Low: &low, High: &high}
			}
		}
		values = append(values, v)
	}
	return values
}

// Analyze classifies each value against its reference range. Values without
// a range accumulate uncertainty notes and are never flagged abnormal.
func (s *Service) Analyze(values []Value) *Result {
	var findings []Finding
	var uncertainty []string

	for _, v := range values {
		if v.ReferenceRange == nil || (v.ReferenceRange.Low == nil && v.ReferenceRange.High == nil) {
			uncertainty = append(uncertainty,
				fmt.Sprintf("No reference range available for %s; it was not classified.", v.Name))
			continue
		}
		r := v.ReferenceRange
		switch {
		case r.Low != nil && v.Value < *r.Low:
			findings = append(findings, Finding{
				Name: v.Name, Value: v.Value, Unit: v.Unit,
				Interpretation: InterpretationBelowRange,
			})
		case r.High != nil && v.Value > *r.High:
			findings = append(findings, Finding{
				Name: v.Name, Value: v.Value, Unit: v.Unit,
				Interpretation: InterpretationAboveRange,
			})
		}
	}

	s.logger.Info("report analyzed", map[string]interface{}{
		"values":   len(values),
		"abnormal": len(findings),
	})

	return &Result{
		Summary:              summaryFor(len(values), len(findings)),
		AbnormalValues:       findings,
		Uncertainty:          uncertainty,
		RecommendedQuestions: questionsFor(findings),
	}
}

func summaryFor(total, abnormal int) string {
	if abnormal == 0 {
		return fmt.Sprintf("Reviewed %d value(s); none were outside their reference ranges.", total)
	}
	return fmt.Sprintf("Reviewed %d value(s); %d outside the reference range.", total, abnormal)
}

func questionsFor(findings []Finding) []string {
	if len(findings) == 0 {
		return []string{"Are all my results within the expected ranges for my age and sex?"}
	}
	questions := make([]string, 0, len(findings))
	for _, f := range findings {
		questions = append(questions,
			fmt.Sprintf("What could explain %s being %s?", f.Name, f.Interpretation))
	}
	return questions
}
