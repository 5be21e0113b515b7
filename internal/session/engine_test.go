package session

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/goleak"

	"github.com/oslerai/preceptor/internal/assess"
	"github.com/oslerai/preceptor/internal/interaction"
	"github.com/oslerai/preceptor/internal/triage"
)

func TestMain(m *testing.M) {
	// The genai dependency drags in opencensus, whose init starts a
	// permanent stats worker goroutine.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newTestSession() *Session {
	s := New("ectopic pregnancy", []string{"Definition and Pathophysiology", "Management"})
	s.Append(RoleTutor, "Why does prior tubal surgery increase the risk of ectopic pregnancy?")
	return s
}

func TestProcessTurn_StrugglingLearner(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSession()

	res, err := e.ProcessTurn(context.Background(), s, "I don't know where to start")
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if !res.Assessed {
		t.Fatal("struggling answer should still be assessed")
	}
	if res.Grade.Quality != assess.QualityConfused {
		t.Errorf("Quality = %q, want confused", res.Grade.Quality)
	}
	if res.Phase != triage.PhaseInitialAssessment {
		t.Errorf("Phase = %q, want initial_assessment", res.Phase)
	}
	if res.NextAction != triage.ActionExplain {
		t.Errorf("NextAction = %q, want explain for a confused learner", res.NextAction)
	}
	if !s.Subtopics[0].Triage.HasInitialAssessment {
		t.Error("initial assessment not merged into status")
	}
	if s.Subtopics[0].Triage.QuestionsUsed != 1 {
		t.Errorf("QuestionsUsed = %d, want 1", s.Subtopics[0].Triage.QuestionsUsed)
	}
}

func TestProcessTurn_GoodAnswerAddressesGap(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSession()

	// First turn establishes the gap analysis.
	if _, err := e.ProcessTurn(context.Background(), s, "I don't know where to start"); err != nil {
		t.Fatal(err)
	}
	before := len(s.Subtopics[0].Triage.AddressedGaps)

	s.Append(RoleTutor, "Walk me through what scarring does to the tube.")
	res, err := e.ProcessTurn(context.Background(), s,
		"Tubal surgery causes scarring, so the embryo moves too slowly and implants in the tube because transit is delayed.")
	if err != nil {
		t.Fatal(err)
	}
	if res.Grade.Quality != assess.QualityGood {
		t.Fatalf("Quality = %q, want good", res.Grade.Quality)
	}
	if res.Phase != triage.PhaseTargetedRemediation {
		t.Errorf("Phase = %q, want targeted_remediation", res.Phase)
	}
	if got := len(s.Subtopics[0].Triage.AddressedGaps); got != before+1 {
		t.Errorf("AddressedGaps grew %d -> %d, want +1", before, got)
	}
	if res.Reasoning.Score <= 0 {
		t.Errorf("Reasoning.Score = %v, want > 0 for causal answer", res.Reasoning.Score)
	}
}

func TestProcessTurn_TracksCorrectAnswers(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSession()

	if _, err := e.ProcessTurn(context.Background(), s, "I don't know where to start"); err != nil {
		t.Fatal(err)
	}
	if got := s.Subtopics[0].CorrectAnswers; got != 0 {
		t.Errorf("CorrectAnswers after confused turn = %d, want 0", got)
	}

	s.Append(RoleTutor, "Walk me through what scarring does to the tube.")
	if _, err := e.ProcessTurn(context.Background(), s,
		"Tubal surgery causes scarring, so the embryo moves too slowly and implants in the tube because transit is delayed."); err != nil {
		t.Fatal(err)
	}
	if got := s.Subtopics[0].CorrectAnswers; got != 1 {
		t.Errorf("CorrectAnswers after good turn = %d, want 1", got)
	}
	if got := s.Subtopics[1].CorrectAnswers; got != 0 {
		t.Errorf("next subtopic CorrectAnswers = %d, want 0", got)
	}
}

func TestProcessTurn_NonLearningInteractionSkipsGrading(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSession()

	res, err := e.ProcessTurn(context.Background(), s, "I'm so stressed about this exam")
	if err != nil {
		t.Fatal(err)
	}
	if res.Assessed {
		t.Error("emotional support turn must not be assessed")
	}
	if res.Classification.Type != interaction.TypeEmotionalSupport {
		t.Errorf("Type = %q, want emotional_support", res.Classification.Type)
	}
	if res.Classification.SuggestedResponse == "" {
		t.Error("no suggested response for non-learning turn")
	}
	if s.Subtopics[0].Triage.QuestionsUsed != 0 {
		t.Error("non-learning turn consumed a question")
	}
}

func TestProcessTurn_ConversationalTurnSkipsGrading(t *testing.T) {
	e := NewEngine(nil, nil)
	s := New("ectopic pregnancy", []string{"Definition and Pathophysiology"})
	s.Append(RoleTutor, "Ready to move on to the next part?")

	res, err := e.ProcessTurn(context.Background(), s, "yes")
	if err != nil {
		t.Fatal(err)
	}
	if res.Assessed {
		t.Error("readiness confirmation was graded")
	}
	if s.Subtopics[0].Triage.QuestionsUsed != 0 {
		t.Error("conversational turn consumed a question")
	}
}

func TestProcessTurn_BudgetExhaustionCompletesSubtopic(t *testing.T) {
	e := NewEngine(nil, nil)
	s := New("ectopic pregnancy", []string{"Definition and Pathophysiology"})

	// Weak answers never address the heuristic critical gap, so the
	// escape valve must end the subtopic within its budget of 6.
	answer := "Egg gets stuck"
	var last *TurnResult
	for turn := 0; turn < 6; turn++ {
		s.Append(RoleTutor, "Tell me more about the implantation site.")
		res, err := e.ProcessTurn(context.Background(), s, answer)
		if err != nil {
			t.Fatalf("turn %d: %v", turn+1, err)
		}
		last = res
		if res.Transition != nil {
			break
		}
	}

	if last == nil || last.Transition == nil {
		t.Fatal("subtopic never completed within its question budget")
	}
	if last.Transition.Status != MasteryGap {
		t.Errorf("Status = %q, want gap (critical gap left open)", last.Transition.Status)
	}
	if !last.Transition.SessionDone {
		t.Error("single-subtopic session should be done")
	}
	if s.Subtopics[0].Reason != triage.ReasonBudgetExhausted {
		t.Errorf("completion reason = %q, want budget_exhausted", s.Subtopics[0].Reason)
	}

	// Further turns are rejected rather than silently re-triaged.
	if _, err := e.ProcessTurn(context.Background(), s, answer); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("turn after completion: err = %v, want ErrSessionComplete", err)
	}
}

func TestProcessTurn_SurfacedGapsBounded(t *testing.T) {
	e := NewEngine(nil, nil)
	s := newTestSession()
	sub := s.Current()
	sub.Triage.HasInitialAssessment = true
	sub.Triage.Analysis = analysisWith("c1", "c2", "c3", "c4", "c5")
	sub.Triage.Analysis.ImportantGaps = []string{"i1", "i2", "i3"}

	res, err := e.ProcessTurn(context.Background(), s,
		"The tube is scarred and that raises the risk of abnormal implantation.")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.SurfacedGaps) > 5 {
		t.Errorf("SurfacedGaps = %d entries, want at most 5", len(res.SurfacedGaps))
	}
	if len(res.SurfacedGaps) == 0 {
		t.Error("open gaps were not surfaced")
	}
}

func TestApplyTurn(t *testing.T) {
	s := newTestSession()
	res, err := ApplyTurn(context.Background(), s, "I don't know")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Assessed || res.Grade.Quality != assess.QualityConfused {
		t.Errorf("ApplyTurn result = %+v", res)
	}
}
