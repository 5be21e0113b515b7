package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oslerai/preceptor/internal/llm"
	"github.com/oslerai/preceptor/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.RecordLLMRequest(ctx, llm.RequestEvent{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "answer-grade",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("RecordLLMRequest: %v", err)
	}
	err = s.RecordLLMRequest(ctx, llm.RequestEvent{
		Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "gap-analysis",
		Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("RecordLLMRequest: %v", err)
	}

	events, err := s.ListLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "gap-analysis" || events[0].Success {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Purpose != "answer-grade" || !events[1].Success {
		t.Errorf("events[1] = %+v", events[1])
	}

	in, out, err := s.TokenTotals(ctx)
	if err != nil {
		t.Fatalf("TokenTotals: %v", err)
	}
	if in != 120 || out != 40 {
		t.Errorf("TokenTotals = %d/%d, want 120/40", in, out)
	}
}

func TestTurnAndCompletionCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	turns := []TurnEvent{
		{SessionID: "s1", Subtopic: "Management", InteractionType: "requires_assessment", Quality: "good", GradeSource: "model", Phase: "targeted_remediation", QuestionsUsed: 2},
		{SessionID: "s1", Subtopic: "Management", InteractionType: "requires_assessment", Quality: "partial", GradeSource: "heuristic", Phase: "application", QuestionsUsed: 3},
		{SessionID: "s1", Subtopic: "Management", InteractionType: "emotional_support"},
	}
	for _, ev := range turns {
		if err := s.AppendTurn(ctx, ev); err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
	}

	sources, err := s.GradeSourceCounts(ctx)
	if err != nil {
		t.Fatalf("GradeSourceCounts: %v", err)
	}
	if sources["model"] != 1 || sources["heuristic"] != 1 || len(sources) != 2 {
		t.Errorf("GradeSourceCounts = %v", sources)
	}

	kinds, err := s.InteractionCounts(ctx)
	if err != nil {
		t.Fatalf("InteractionCounts: %v", err)
	}
	if kinds["requires_assessment"] != 2 || kinds["emotional_support"] != 1 {
		t.Errorf("InteractionCounts = %v", kinds)
	}

	completions := []CompletionEvent{
		{SessionID: "s1", Subtopic: "Management", Reason: "mastery", Status: "understood", QuestionsUsed: 4},
		{SessionID: "s1", Subtopic: "Risk Factors", Reason: "budget_exhausted", Status: "shaky", QuestionsUsed: 8},
		{SessionID: "s2", Subtopic: "Management", Reason: "budget_exhausted", Status: "gap", QuestionsUsed: 8},
	}
	for _, ev := range completions {
		if err := s.AppendCompletion(ctx, ev); err != nil {
			t.Fatalf("AppendCompletion: %v", err)
		}
	}

	reasons, err := s.CompletionCounts(ctx)
	if err != nil {
		t.Fatalf("CompletionCounts: %v", err)
	}
	if reasons["mastery"] != 1 || reasons["budget_exhausted"] != 2 {
		t.Errorf("CompletionCounts = %v", reasons)
	}

	statuses, err := s.StatusCounts(ctx)
	if err != nil {
		t.Fatalf("StatusCounts: %v", err)
	}
	if statuses["understood"] != 1 || statuses["shaky"] != 1 || statuses["gap"] != 1 {
		t.Errorf("StatusCounts = %v", statuses)
	}
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	none, err := s.LoadLatestSession(ctx)
	if err != nil {
		t.Fatalf("LoadLatestSession: %v", err)
	}
	if none != nil {
		t.Fatalf("LoadLatestSession on empty store = %+v, want nil", none)
	}

	sess := session.New("ectopic pregnancy", []string{"Definition and Pathophysiology", "Management"})
	sess.Append(session.RoleTutor, "What defines an ectopic pregnancy?")
	sess.Append(session.RoleLearner, "Implantation outside the uterine cavity")
	sess.Subtopics[0].Triage.QuestionsUsed = 1

	if err := s.SaveSession(ctx, sess); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := s.LoadLatestSession(ctx)
	if err != nil {
		t.Fatalf("LoadLatestSession: %v", err)
	}
	if got == nil || got.ID != sess.ID {
		t.Fatalf("restored session = %+v", got)
	}
	if len(got.Messages) != 2 || got.Subtopics[0].Triage.QuestionsUsed != 1 {
		t.Errorf("restored session lost state: %+v", got)
	}
}

func TestSnapshotPruning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := session.New("ectopic pregnancy", []string{"a"})
	for i := 0; i < snapshotKeep+5; i++ {
		require.NoError(t, s.SaveSession(ctx, sess))
	}

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM session_snapshots`).Scan(&n))
	if n != snapshotKeep {
		t.Errorf("snapshot count = %d, want %d", n, snapshotKeep)
	}
}
