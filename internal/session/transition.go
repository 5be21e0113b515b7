package session

import (
	"math/rand/v2"

	"github.com/oslerai/preceptor/internal/triage"
)

// Retention probe policy. Every third subtopic boundary, usually but not
// always, the tutor circles back to something the learner already showed
// they understood.
const (
	retentionInterval    = 3
	retentionProbability = 0.7
)

// Transitioner advances a session across subtopic boundaries. The rng only
// feeds the retention coin flip, so tests inject a seeded source.
type Transitioner struct {
	rng *rand.Rand
}

// NewTransitioner builds a Transitioner. A nil rng gets a default source.
func NewTransitioner(rng *rand.Rand) *Transitioner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Transitioner{rng: rng}
}

// Transition is the result of completing one subtopic.
type Transition struct {
	CompletedTitle string
	Status         MasteryStatus
	SessionDone    bool

	// RetentionProbe names an earlier understood subtopic to re-probe
	// conversationally before the next subtopic starts. Empty when the
	// policy did not fire. The probe never reopens the subtopic's
	// triaging state.
	RetentionProbe string
}

// CompleteCurrent verdicts the current subtopic and advances the index.
// The verdict depends on how triaging ended and what was left unaddressed,
// not on which phase the final turn ran in.
func (t *Transitioner) CompleteCurrent(s *Session, reason triage.CompletionReason) Transition {
	sub := s.Current()
	if sub == nil {
		return Transition{SessionDone: true}
	}

	sub.Status = verdict(reason, sub.Triage)
	sub.Reason = reason

	out := Transition{
		CompletedTitle: sub.Title,
		Status:         sub.Status,
	}

	s.CurrentIndex++
	out.SessionDone = s.Complete()

	if !out.SessionDone && s.CurrentIndex%retentionInterval == 0 && s.CurrentIndex > 0 {
		if t.rng.Float64() < retentionProbability {
			out.RetentionProbe = t.pickUnderstood(s)
		}
	}
	return out
}

// verdict maps a completion reason and the final triage state onto a
// mastery status.
func verdict(reason triage.CompletionReason, st triage.Status) MasteryStatus {
	if reason == triage.ReasonMastery {
		return MasteryUnderstood
	}
	// Budget exhausted. Unaddressed critical gaps mean the learner left
	// with a real hole; anything milder is just shaky.
	if st.Analysis != nil {
		for _, g := range st.Analysis.CriticalGaps {
			if !addressed(st.AddressedGaps, g) {
				return MasteryGap
			}
		}
	}
	return MasteryShaky
}

func addressed(list []string, g string) bool {
	for _, v := range list {
		if v == g {
			return true
		}
	}
	return false
}

// pickUnderstood selects a random completed subtopic marked understood.
// Returns "" when none qualify.
func (t *Transitioner) pickUnderstood(s *Session) string {
	var candidates []string
	for i := 0; i < s.CurrentIndex && i < len(s.Subtopics); i++ {
		if s.Subtopics[i].Status == MasteryUnderstood {
			candidates = append(candidates, s.Subtopics[i].Title)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[t.rng.IntN(len(candidates))]
}
