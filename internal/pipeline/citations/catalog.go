// Package citations verifies that guidance is backed by at least one
// approved reference before it may be narrated.
package citations

// Catalog is the immutable, versioned reference set. It is loaded once at
// startup and shared across requests without synchronization.
type Catalog struct {
	version string
	entries []Citation
}

func NewCatalog(version string, entries []Citation) *Catalog {
	return &Catalog{version: version, entries: entries}
}

func (c *Catalog) Version() string { return c.version }

func (c *Catalog) Len() int { return len(c.entries) }

// FindByTags returns every citation whose tag set intersects topicTags.
func (c *Catalog) FindByTags(topicTags []string) []Citation {
	want := make(map[string]struct{}, len(topicTags))
	for _, t := range topicTags {
		want[t] = struct{}{}
	}

	var out []Citation
	for _, entry := range c.entries {
		for _, tag := range entry.Tags {
			if _, ok := want[tag]; ok {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

// BuiltinCatalog is the compiled-in reference set used when no external
// catalog source is configured.
func BuiltinCatalog() *Catalog {
	return NewCatalog("builtin-2024.1", []Citation{
		{
			SourceID:    "who-emergency-care-2019",
			ChunkID:     "triage-red-flags",
			SupportText: "Chest pain, breathing difficulty, altered consciousness, seizures and uncontrolled bleeding require immediate emergency assessment.",
			Tags:        []string{"triage", "emergency"},
		},
		{
			SourceID:    "acep-urgent-care-guidance",
			ChunkID:     "same-day-assessment",
			SupportText: "Severe symptom intensity without immediate life threat warrants same-day clinical assessment.",
			Tags:        []string{"triage", "urgent_care"},
		},
		{
			SourceID:    "nice-cks-persistent-symptoms",
			ChunkID:     "routine-review",
			SupportText: "Symptoms persisting beyond three days without red flags should be reviewed by a primary care clinician.",
			Tags:        []string{"triage", "primary_care"},
		},
		{
			SourceID:    "nice-cks-self-care",
			ChunkID:     "self-care-advice",
			SupportText: "Short-lived mild symptoms can usually be managed with rest, hydration and symptom monitoring.",
			Tags:        []string{"triage", "self_care"},
		},
		{
			SourceID:    "fda-drug-interactions",
			ChunkID:     "interaction-tables",
			SupportText: "Documented pairwise interactions carry labeled severities and management guidance.",
			Tags:        []string{"rx", "interaction", "duplication"},
		},
		{
			SourceID:    "fda-pregnancy-labeling",
			ChunkID:     "pregnancy-contraindications",
			SupportText: "Medicines with known fetal risk are contraindicated during pregnancy per their labeling.",
			Tags:        []string{"rx", "contraindication"},
		},
		{
			SourceID:    "who-essential-medicines",
			ChunkID:     "formulary-reference",
			SupportText: "Medication identification and safe-use information for essential medicines.",
			Tags:        []string{"rx", "missing_info"},
		},
		{
			SourceID:    "clsi-reference-intervals",
			ChunkID:     "lab-interpretation",
			SupportText: "Laboratory values outside the stated reference interval merit clinical correlation.",
			Tags:        []string{"report"},
		},
	})
}
