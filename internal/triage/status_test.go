package triage

import (
	"reflect"
	"testing"

	"github.com/oslerai/preceptor/internal/gaps"
)

func TestMerge_Idempotent(t *testing.T) {
	base := Status{
		HasInitialAssessment: true,
		Analysis:             &gaps.Analysis{CriticalGaps: []string{"a", "b"}},
		AddressedGaps:        []string{"a"},
		QuestionsUsed:        2,
	}
	d := Delta{
		AddressGaps:           []string{"b"},
		AcknowledgeGaps:       []string{"c"},
		QuestionsUsed:         3,
		MarkTestedApplication: true,
	}

	once := Merge(base, d)
	twice := Merge(once, d)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if got := once.AddressedGaps; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("AddressedGaps = %v, want [a b]", got)
	}
	if once.QuestionsUsed != 3 {
		t.Errorf("QuestionsUsed = %d, want 3", once.QuestionsUsed)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	base := Status{AddressedGaps: []string{"a"}}
	_ = Merge(base, Delta{AddressGaps: []string{"b"}})
	if len(base.AddressedGaps) != 1 {
		t.Errorf("input status mutated: %v", base.AddressedGaps)
	}
}

func TestMerge_CounterMonotonic(t *testing.T) {
	s := Status{QuestionsUsed: 4}
	got := Merge(s, Delta{QuestionsUsed: 2})
	if got.QuestionsUsed != 4 {
		t.Errorf("QuestionsUsed = %d, want 4 (stale delta must not roll back)", got.QuestionsUsed)
	}
}
