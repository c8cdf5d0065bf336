package intake

import "time"

// AwaitingField names the single field the dialogue is currently asking for.
type AwaitingField string

const (
	AwaitNone     AwaitingField = "none"
	AwaitSymptoms AwaitingField = "symptoms"
	AwaitSeverity AwaitingField = "severity"
	AwaitDuration AwaitingField = "duration"
	AwaitAge      AwaitingField = "age"
)

// State is the per-session intake record. It lives in the external session
// store between turns: read at the start of a turn, written at the end.
type State struct {
	SessionID     string        `json:"sessionId"`
	Text          string        `json:"text,omitempty"`
	Severity      *int          `json:"severity,omitempty"`
	DurationHours *float64      `json:"durationHours,omitempty"`
	AgeYears      *int          `json:"ageYears,omitempty"`
	SexAtBirth    string        `json:"sexAtBirth,omitempty"`
	Pregnant      *bool         `json:"pregnant,omitempty"`
	SkipSeverity  bool          `json:"skipSeverity"`
	SkipDuration  bool          `json:"skipDuration"`
	SkipAge       bool          `json:"skipAge"`
	Awaiting      AwaitingField `json:"awaitingField,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Awaiting:  AwaitNone,
		UpdatedAt: time.Now().UTC(),
	}
}

// TurnInfo carries everything one turn contributes to the dialogue: the
// redacted text, the symptom keywords extracted from it, and any structured
// hints the caller supplied directly.
type TurnInfo struct {
	Text          string
	Keywords      []string
	Severity      *int
	DurationHours *float64
	AgeYears      *int
	SexAtBirth    string
	Pregnant      *bool
}

// Outcome is the result of one intake turn: either a single clarifying
// question, or the completed state ready for the decision engine.
type Outcome struct {
	Question  string        `json:"question,omitempty"`
	Awaiting  AwaitingField `json:"awaiting,omitempty"`
	Assembled *State        `json:"-"`
}

// Ready reports whether enough fields are known to run the decision engine.
func (o *Outcome) Ready() bool {
	return o.Assembled != nil
}
