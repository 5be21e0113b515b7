package session

import (
	"math/rand/v2"
	"testing"

	"github.com/oslerai/preceptor/internal/gaps"
	"github.com/oslerai/preceptor/internal/triage"
)

func analysisWith(criticals ...string) *gaps.Analysis {
	return &gaps.Analysis{CriticalGaps: criticals}
}

func TestCompleteCurrentAdvances(t *testing.T) {
	s := New("ectopic pregnancy", []string{"a", "b"})
	tr := NewTransitioner(nil).CompleteCurrent(s, triage.ReasonMastery)

	if tr.CompletedTitle != "a" || tr.Status != MasteryUnderstood {
		t.Errorf("transition = %+v", tr)
	}
	if tr.SessionDone {
		t.Error("session done after first of two subtopics")
	}
	if cur := s.Current(); cur == nil || cur.Title != "b" {
		t.Errorf("Current() = %+v, want subtopic b", cur)
	}
	if s.Subtopics[0].Reason != triage.ReasonMastery {
		t.Errorf("completed subtopic reason = %q", s.Subtopics[0].Reason)
	}
}

func TestCompleteCurrentFinishesSession(t *testing.T) {
	s := New("ectopic pregnancy", []string{"only"})
	tr := NewTransitioner(nil).CompleteCurrent(s, triage.ReasonBudgetExhausted)
	if !tr.SessionDone {
		t.Error("single-subtopic session should be done")
	}
	if !s.Complete() {
		t.Error("session should report complete")
	}
}

func TestRetentionProbeFiresAtThirdBoundary(t *testing.T) {
	titles := []string{"a", "b", "c", "d"}
	fired := 0
	const trials = 300

	for seed := uint64(0); seed < trials; seed++ {
		tm := NewTransitioner(rand.New(rand.NewPCG(seed, 0)))
		s := New("ectopic pregnancy", titles)

		for i := 0; i < 3; i++ {
			tr := tm.CompleteCurrent(s, triage.ReasonMastery)
			if i < 2 && tr.RetentionProbe != "" {
				t.Fatalf("probe fired at boundary %d", i+1)
			}
			if i == 2 && tr.RetentionProbe != "" {
				switch tr.RetentionProbe {
				case "a", "b", "c":
				default:
					t.Fatalf("probe %q is not a completed subtopic", tr.RetentionProbe)
				}
				fired++
			}
		}
	}

	// The coin is weighted 0.7; allow a wide band so the test is not
	// sensitive to the PCG stream.
	if fired < trials*5/10 || fired > trials*9/10 {
		t.Errorf("probe fired %d/%d times, want roughly 70%%", fired, trials)
	}
}

func TestRetentionProbeSkipsNonUnderstood(t *testing.T) {
	s := New("ectopic pregnancy", []string{"a", "b", "c", "d"})
	// Give every completed subtopic an open critical gap so nothing is
	// marked understood.
	for seed := uint64(0); seed < 50; seed++ {
		tm := NewTransitioner(rand.New(rand.NewPCG(seed, 0)))
		s = New("ectopic pregnancy", []string{"a", "b", "c", "d"})
		for i := range s.Subtopics {
			s.Subtopics[i].Triage.Analysis = analysisWith("open gap")
		}
		for i := 0; i < 3; i++ {
			if tr := tm.CompleteCurrent(s, triage.ReasonBudgetExhausted); tr.RetentionProbe != "" {
				t.Fatalf("probe %q fired with no understood subtopics", tr.RetentionProbe)
			}
		}
	}
}
