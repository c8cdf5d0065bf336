package report

// ReferenceRange is an optional low/high bound pair for a lab value.
type ReferenceRange struct {
	Low  *float64 `json:"low,omitempty"`
	High *float64 `json:"high,omitempty"`
}

// Value is one lab measurement, structured or parsed from text.
type Value struct {
	Name           string          `json:"name"`
	Value          float64         `json:"value"`
	Unit           string          `json:"unit,omitempty"`
	ReferenceRange *ReferenceRange `json:"referenceRange,omitempty"`
}

// Interpretation classifies an out-of-range value.
type Interpretation string

const (
	InterpretationBelowRange Interpretation = "below range"
	InterpretationAboveRange Interpretation = "above range"
)

// Finding is one out-of-range result. In-range values produce no finding.
type Finding struct {
	Name           string         `json:"name"`
	Value          float64        `json:"value"`
	Unit           string         `json:"unit,omitempty"`
	Interpretation Interpretation `json:"interpretation"`
}

// Result is the outcome of one report analysis.
type Result struct {
	Summary              string    `json:"summary"`
	AbnormalValues       []Finding `json:"abnormalValues"`
	Uncertainty          []string  `json:"uncertainty,omitempty"`
	RecommendedQuestions []string  `json:"recommendedQuestions"`
}
