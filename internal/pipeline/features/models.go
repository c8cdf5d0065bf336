package features

// AgeBand buckets an exact age into a coarse, de-identified band.
type AgeBand string

const (
	AgeBandChild AgeBand = "child" // < 18
	AgeBandAdult AgeBand = "adult" // 18-64
	AgeBandOlder AgeBand = "older" // >= 65
)

// StructuredFeatures is the de-identified, bounded feature set handed to
// every downstream stage. It never carries raw text or identifiers.
type StructuredFeatures struct {
	AgeBand         AgeBand  `json:"ageBand,omitempty"`
	SymptomKeywords []string `json:"symptomKeywords"`
	Severity        *int     `json:"severity,omitempty"`
	DurationHours   *float64 `json:"durationHours,omitempty"`
}

// Hints are the optional structured values supplied alongside the free text.
type Hints struct {
	AgeYears      *int
	Severity      *int
	DurationHours *float64
}
