package intake

import (
	"context"
	"testing"
	"time"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	store := NewMemoryStore(30 * time.Minute)
	return NewService(store, logger.NewTestLogger(t)), store
}

func TestProcessTurn_FullDialogue(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	const session = "sess-1"

	// Turn 1: plain symptom text yields a severity question.
	out, err := svc.ProcessTurn(ctx, session, TurnInfo{
		Text:     "I have a headache",
		Keywords: []string{"headache"},
	})
	require.NoError(t, err)
	assert.False(t, out.Ready())
	assert.Equal(t, AwaitSeverity, out.Awaiting)
	assert.NotEmpty(t, out.Question)

	st, _ := store.Get(ctx, session)
	require.NotNil(t, st)
	assert.Equal(t, "I have a headache", st.Text)

	// Turn 2: "skip" sets skipSeverity and advances to duration.
	out, err = svc.ProcessTurn(ctx, session, TurnInfo{Text: "skip"})
	require.NoError(t, err)
	assert.Equal(t, AwaitDuration, out.Awaiting)

	st, _ = store.Get(ctx, session)
	require.NotNil(t, st)
	assert.True(t, st.SkipSeverity)

	// Turn 3: a parsable duration advances to the age question.
	out, err = svc.ProcessTurn(ctx, session, TurnInfo{Text: "about 2 days"})
	require.NoError(t, err)
	assert.Equal(t, AwaitAge, out.Awaiting)

	// Turn 4: a bare age completes intake and clears the session.
	out, err = svc.ProcessTurn(ctx, session, TurnInfo{Text: "30"})
	require.NoError(t, err)
	require.True(t, out.Ready())
	assert.Empty(t, out.Question)

	assembled := out.Assembled
	assert.Equal(t, "I have a headache", assembled.Text)
	assert.True(t, assembled.SkipSeverity)
	require.NotNil(t, assembled.DurationHours)
	assert.Equal(t, 48.0, *assembled.DurationHours)
	require.NotNil(t, assembled.AgeYears)
	assert.Equal(t, 30, *assembled.AgeYears)

	st, err = store.Get(ctx, session)
	require.NoError(t, err)
	assert.Nil(t, st, "session state must be cleared after assembly")
}

func TestProcessTurn_OneShotWhenEverythingInline(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	out, err := svc.ProcessTurn(ctx, "sess-2", TurnInfo{
		Text:     "severe headache for 3 days, I'm 40",
		Keywords: []string{"headache"},
	})
	require.NoError(t, err)
	require.True(t, out.Ready())

	assembled := out.Assembled
	require.NotNil(t, assembled.Severity)
	assert.Equal(t, 8, *assembled.Severity)
	require.NotNil(t, assembled.DurationHours)
	assert.Equal(t, 72.0, *assembled.DurationHours)
	require.NotNil(t, assembled.AgeYears)
	assert.Equal(t, 40, *assembled.AgeYears)

	st, _ := store.Get(ctx, "sess-2")
	assert.Nil(t, st)
}

func TestProcessTurn_StructuredHintsPreempt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Hints supplied alongside the first turn mean those questions are
	// never asked.
	sev := 6
	age := 25
	out, err := svc.ProcessTurn(ctx, "sess-3", TurnInfo{
		Text:     "stomach ache",
		Keywords: []string{"stomach ache"},
		Severity: &sev,
		AgeYears: &age,
	})
	require.NoError(t, err)
	assert.Equal(t, AwaitDuration, out.Awaiting, "only duration is still owed")

	out, err = svc.ProcessTurn(ctx, "sess-3", TurnInfo{Text: "6 hours"})
	require.NoError(t, err)
	require.True(t, out.Ready())
	assert.Equal(t, 6, *out.Assembled.Severity)
	assert.Equal(t, 25, *out.Assembled.AgeYears)
}

func TestProcessTurn_NonSymptomFirstTurnAsksForSymptoms(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.ProcessTurn(ctx, "sess-4", TurnInfo{Text: "12345"})
	require.NoError(t, err)
	assert.Equal(t, AwaitSymptoms, out.Awaiting)
	assert.Equal(t, questionSymptoms, out.Question)
}

func TestProcessTurn_AnswerNotMistakenForSymptomText(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	const session = "sess-5"

	_, err := svc.ProcessTurn(ctx, session, TurnInfo{
		Text:     "bad cough",
		Keywords: []string{"cough"},
	})
	require.NoError(t, err)

	// "not sure" answers the severity question; it must not be appended to
	// the symptom description.
	_, err = svc.ProcessTurn(ctx, session, TurnInfo{Text: "not sure"})
	require.NoError(t, err)

	st, _ := store.Get(ctx, session)
	require.NotNil(t, st)
	assert.Equal(t, "bad cough", st.Text)
	assert.True(t, st.SkipSeverity)
}

func TestAbandonAndHasPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ProcessTurn(ctx, "sess-6", TurnInfo{Text: "rash on my arm", Keywords: []string{"rash"}})
	require.NoError(t, err)

	pending, err := svc.HasPending(ctx, "sess-6")
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, svc.Abandon(ctx, "sess-6"))

	pending, err = svc.HasPending(ctx, "sess-6")
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	st := NewState("sess-7")
	st.UpdatedAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Put(ctx, st))

	got, err := store.Get(ctx, "sess-7")
	require.NoError(t, err)
	assert.Nil(t, got)
}
