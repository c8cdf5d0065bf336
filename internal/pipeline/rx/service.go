// Package rx normalizes free-text drug names and evaluates the fixed
// interaction, duplication and contraindication rule tables.
package rx

import (
	"fmt"
	"strings"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
)

type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		logger: log.With(map[string]interface{}{"stage": "rx"}),
	}
}

// Check runs all rule tables over the normalized medication set. The checks
// are independent; issues accumulate rather than excluding each other.
func (s *Service) Check(medications []string, newPrescription string, pregnant bool, knownConditions []string) *Result {
	names := make([]string, 0, len(medications)+1)
	names = append(names, medications...)
	if strings.TrimSpace(newPrescription) != "" {
		names = append(names, newPrescription)
	}

	normalized, unknown := s.normalize(names)

	var issues []Issue
	issues = append(issues, s.checkInteractions(normalized)...)
	issues = append(issues, s.checkDuplications(normalized)...)
	if pregnant {
		issues = append(issues, s.checkPregnancy(normalized)...)
	}
	if len(knownConditions) > 0 {
		issues = append(issues, s.checkConditions(normalized, knownConditions)...)
	}
	if len(unknown) > 0 {
		issues = append(issues, Issue{
			Kind:          KindMissingInfo,
			Severity:      SeverityInfo,
			DrugsInvolved: unknown,
			Mechanism:     "These names were not found in the medication reference table.",
			Management:    "Check the spelling or share the packaging with a pharmacist; they were not evaluated.",
		})
	}

	s.logger.Info("medication check complete", map[string]interface{}{
		"medications": len(names),
		"issues":      len(issues),
		"unknown":     len(unknown),
	})

	return &Result{
		Issues:      issues,
		Normalized:  normalized,
		UnknownMeds: unknown,
		Summary:     summarize(issues),
	}
}

// normalize resolves names via exact, case-insensitive table lookup.
// Unmatched names are reported, never dropped.
func (s *Service) normalize(names []string) ([]NormalizedDrug, []string) {
	var normalized []NormalizedDrug
	var unknown []string
	for _, raw := range names {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		if drug, ok := drugCodes[key]; ok {
			normalized = append(normalized, drug)
		} else {
			unknown = append(unknown, raw)
		}
	}
	return normalized, unknown
}

func (s *Service) checkInteractions(drugs []NormalizedDrug) []Issue {
	var issues []Issue
	reported := make(map[string]struct{})

	for i := 0; i < len(drugs); i++ {
		for j := i + 1; j < len(drugs); j++ {
			rule := findRule(drugs[i].Code, drugs[j].Code)
			if rule == nil {
				continue
			}
			pairKey := rule.codeA + ":" + rule.codeB
			if _, dup := reported[pairKey]; dup {
				continue
			}
			reported[pairKey] = struct{}{}
			issues = append(issues, Issue{
				Kind:           KindInteraction,
				Severity:       rule.severity,
				DrugsInvolved:  []string{drugs[i].CanonicalName, drugs[j].CanonicalName},
				Mechanism:      rule.mechanism,
				Management:     rule.management,
				EvidenceSource: rule.evidenceSource,
			})
		}
	}
	return issues
}

func findRule(codeA, codeB string) *interactionRule {
	for i := range interactionRules {
		r := &interactionRules[i]
		if (r.codeA == codeA && r.codeB == codeB) || (r.codeA == codeB && r.codeB == codeA) {
			return r
		}
	}
	return nil
}

func (s *Service) checkDuplications(drugs []NormalizedDrug) []Issue {
	var issues []Issue
	byCode := make(map[string][]string)
	order := make([]string, 0, len(drugs))
	for _, d := range drugs {
		if _, seen := byCode[d.Code]; !seen {
			order = append(order, d.Code)
		}
		byCode[d.Code] = append(byCode[d.Code], d.CanonicalName)
	}

	for _, code := range order {
		names := byCode[code]
		if len(names) < 2 {
			continue
		}
		issues = append(issues, Issue{
			Kind:          KindDuplication,
			Severity:      SeverityCaution,
			DrugsInvolved: names,
			Mechanism:     "Multiple entries resolve to the same active ingredient.",
			Management:    "Take only one product containing this ingredient unless told otherwise.",
		})
	}
	return issues
}

func (s *Service) checkPregnancy(drugs []NormalizedDrug) []Issue {
	var issues []Issue
	flagged := make(map[string]struct{})
	for _, d := range drugs {
		reason, bad := pregnancyContraindicated[d.Code]
		if !bad {
			continue
		}
		if _, dup := flagged[d.Code]; dup {
			continue
		}
		flagged[d.Code] = struct{}{}
		issues = append(issues, Issue{
			Kind:           KindContraindication,
			Severity:       SeverityCritical,
			DrugsInvolved:  []string{d.CanonicalName},
			Mechanism:      reason,
			Management:     "Do not take this while pregnant; contact the prescriber today.",
			EvidenceSource: "FDA pregnancy and lactation labeling",
		})
	}
	return issues
}

func (s *Service) checkConditions(drugs []NormalizedDrug, conditions []string) []Issue {
	var issues []Issue
	flagged := make(map[string]struct{})
	for _, d := range drugs {
		for i := range conditionRules {
			rule := &conditionRules[i]
			if rule.code != d.Code {
				continue
			}
			matched := ""
			for _, c := range conditions {
				if strings.Contains(strings.ToLower(c), rule.condition) {
					matched = strings.TrimSpace(c)
					break
				}
			}
			if matched == "" {
				continue
			}
			key := rule.code + ":" + rule.condition
			if _, dup := flagged[key]; dup {
				continue
			}
			flagged[key] = struct{}{}
			issues = append(issues, Issue{
				Kind:           KindContraindication,
				Severity:       rule.severity,
				DrugsInvolved:  []string{d.CanonicalName},
				Mechanism:      fmt.Sprintf("With %s: %s", matched, rule.mechanism),
				Management:     rule.management,
				EvidenceSource: rule.evidenceSource,
			})
		}
	}
	return issues
}

func summarize(issues []Issue) string {
	if len(issues) == 0 {
		return "No issues found across the checked medications."
	}
	counts := make(map[IssueKind]int)
	for _, is := range issues {
		counts[is.Kind]++
	}
	parts := make([]string, 0, len(counts))
	for _, kind := range []IssueKind{KindInteraction, KindContraindication, KindDuplication, KindDoseError, KindMissingInfo} {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ReplaceAll(string(kind), "_", " ")))
		}
	}
	return fmt.Sprintf("Found %d issue(s): %s.", len(issues), strings.Join(parts, ", "))
}
