package triage

import "github.com/oslerai/preceptor/internal/gaps"

// Status tracks triaging progress through a single subtopic. The zero value
// is a valid starting state for a fresh subtopic.
type Status struct {
	HasInitialAssessment bool           `json:"hasInitialAssessment"`
	Analysis             *gaps.Analysis `json:"analysis,omitempty"`
	AddressedGaps        []string       `json:"addressedGaps,omitempty"`
	AcknowledgedGaps     []string       `json:"acknowledgedGaps,omitempty"`
	QuestionsUsed        int            `json:"questionsUsed"`
	HasTestedApplication bool           `json:"hasTestedApplication"`
}

// NewStatus returns the status for a subtopic that has not been probed yet.
func NewStatus() Status {
	return Status{}
}

// Delta is the full set of status changes produced by one evaluated turn.
// It carries absolute values where merging must be idempotent: QuestionsUsed
// is the count after the turn, not an increment, so applying the same delta
// twice cannot double-count.
type Delta struct {
	MarkInitialAssessment bool
	Analysis              *gaps.Analysis
	AddressGaps           []string
	AcknowledgeGaps       []string
	QuestionsUsed         int
	MarkTestedApplication bool
}

// Merge applies d on top of s and returns the result. Merge never mutates s.
// Gap lists are set unions and counters are monotonic, so merging the same
// delta any number of times yields the same status.
func Merge(s Status, d Delta) Status {
	out := s
	if d.MarkInitialAssessment {
		out.HasInitialAssessment = true
	}
	if d.Analysis != nil {
		out.Analysis = d.Analysis
	}
	if d.MarkTestedApplication {
		out.HasTestedApplication = true
	}
	if d.QuestionsUsed > out.QuestionsUsed {
		out.QuestionsUsed = d.QuestionsUsed
	}
	out.AddressedGaps = unionAppend(s.AddressedGaps, d.AddressGaps)
	out.AcknowledgedGaps = unionAppend(s.AcknowledgedGaps, d.AcknowledgeGaps)
	return out
}

// unionAppend appends the members of add that are not already in base,
// preserving order and leaving base untouched.
func unionAppend(base, add []string) []string {
	if len(add) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]string, 0, len(base)+len(add))
	for _, g := range base {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	for _, g := range add {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
