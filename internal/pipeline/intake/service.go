// Package intake drives the multi-turn clarification dialogue until enough
// structured fields exist to run the triage decision engine.
package intake

import (
	"context"
	"time"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
)

const (
	questionSymptoms = "What symptoms are you experiencing?"
	questionSeverity = "On a scale of 1 to 10, how severe is it? You can say skip."
	questionDuration = "How long have you had these symptoms? For example: 6 hours, 2 days."
	questionAge      = "What is your age? You can say skip."
)

type Service struct {
	store  Store
	logger logger.Logger
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log.With(map[string]interface{}{"stage": "intake"}),
	}
}

// ProcessTurn advances the session's dialogue by one turn. It asks at most
// one question; when every field is known or skipped it returns the
// assembled state and clears the session.
func (s *Service) ProcessTurn(ctx context.Context, sessionID string, turn TurnInfo) (*Outcome, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.NewSessionStoreError(err)
	}
	if st == nil {
		st = NewState(sessionID)
	}

	sig := ParseSignals(turn.Text, st.Awaiting)
	consumed := s.applySignals(st, turn, sig)

	if st.Text == "" {
		if !consumed && looksLikeSymptomText(turn.Text, turn.Keywords) {
			st.Text = turn.Text
		}
	} else if len(turn.Keywords) > 0 && turn.Text != st.Text && !consumed {
		// Follow-up turns that mention new symptoms extend the description.
		st.Text = st.Text + " " + turn.Text
	}

	if q, awaiting := s.nextQuestion(st); q != "" {
		st.Awaiting = awaiting
		st.UpdatedAt = time.Now().UTC()
		if err := s.store.Put(ctx, st); err != nil {
			return nil, errors.NewSessionStoreError(err)
		}
		s.logger.Debug("asking clarification", map[string]interface{}{
			"sessionId": sessionID,
			"awaiting":  string(awaiting),
		})
		return &Outcome{Question: q, Awaiting: awaiting}, nil
	}

	st.Awaiting = AwaitNone
	st.UpdatedAt = time.Now().UTC()
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, errors.NewSessionStoreError(err)
	}
	s.logger.Info("intake complete", map[string]interface{}{
		"sessionId":    sessionID,
		"skipSeverity": st.SkipSeverity,
		"skipDuration": st.SkipDuration,
		"skipAge":      st.SkipAge,
	})
	return &Outcome{Awaiting: AwaitNone, Assembled: st}, nil
}

// Abandon clears the session when the conversation stops being
// symptom-related.
func (s *Service) Abandon(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}

// HasPending reports whether the session has an intake dialogue in flight.
func (s *Service) HasPending(ctx context.Context, sessionID string) (bool, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return false, errors.NewSessionStoreError(err)
	}
	return st != nil, nil
}

// applySignals merges structured hints and parsed signals into the state.
// Existing values win; a turn never overwrites an already-known field.
// It reports whether the turn was consumed as an answer to the question
// currently being asked, so it is not mistaken for symptom text.
func (s *Service) applySignals(st *State, turn TurnInfo, sig Signals) bool {
	if st.Severity == nil {
		if turn.Severity != nil {
			st.Severity = turn.Severity
		} else if sig.Severity != nil {
			st.Severity = sig.Severity
		}
	}
	if st.DurationHours == nil {
		if turn.DurationHours != nil {
			st.DurationHours = turn.DurationHours
		} else if sig.DurationHours != nil {
			st.DurationHours = sig.DurationHours
		}
	}
	if st.AgeYears == nil {
		if turn.AgeYears != nil {
			st.AgeYears = turn.AgeYears
		} else if sig.AgeYears != nil {
			st.AgeYears = sig.AgeYears
		}
	}
	if st.SexAtBirth == "" {
		if turn.SexAtBirth != "" {
			st.SexAtBirth = turn.SexAtBirth
		} else if sig.SexAtBirth != "" {
			st.SexAtBirth = sig.SexAtBirth
		}
	}
	if st.Pregnant == nil {
		if turn.Pregnant != nil {
			st.Pregnant = turn.Pregnant
		} else if sig.Pregnant != nil {
			st.Pregnant = sig.Pregnant
		}
	}

	switch st.Awaiting {
	case AwaitSeverity:
		if sig.SkipCurrent {
			st.SkipSeverity = true
			return true
		}
		return sig.Severity != nil
	case AwaitDuration:
		if sig.SkipCurrent {
			st.SkipDuration = true
			return true
		}
		return sig.DurationHours != nil
	case AwaitAge:
		if sig.SkipCurrent {
			st.SkipAge = true
			return true
		}
		return sig.AgeYears != nil
	}
	return false
}

// nextQuestion walks the fixed field order and returns the first question
// still owed, or empty when intake is complete.
func (s *Service) nextQuestion(st *State) (string, AwaitingField) {
	if st.Text == "" {
		return questionSymptoms, AwaitSymptoms
	}
	if st.Severity == nil && !st.SkipSeverity {
		return questionSeverity, AwaitSeverity
	}
	if st.DurationHours == nil && !st.SkipDuration {
		return questionDuration, AwaitDuration
	}
	if st.AgeYears == nil && !st.SkipAge {
		return questionAge, AwaitAge
	}
	return "", AwaitNone
}
