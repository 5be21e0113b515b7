package triage

import (
	"context"

	"github.com/oslerai/preceptor/internal/assess"
	"github.com/oslerai/preceptor/internal/gaps"
)

// Analyzer produces a gap analysis for a learner's answer. Satisfied by
// *gaps.Analyzer.
type Analyzer interface {
	Analyze(ctx context.Context, answer, subtopic, topic string) *gaps.Analysis
}

// Orchestrator decides the next tutoring move for a subtopic. Rules are
// evaluated in priority order and the first match wins, which keeps every
// turn explainable from the status alone.
type Orchestrator struct {
	analyzer Analyzer
}

// NewOrchestrator builds an orchestrator. A nil analyzer falls back to the
// deterministic heuristic analyzer, so the decision path works offline.
func NewOrchestrator(analyzer Analyzer) *Orchestrator {
	if analyzer == nil {
		analyzer = gaps.NewAnalyzer(nil, gaps.DefaultConfig())
	}
	return &Orchestrator{analyzer: analyzer}
}

// Input is one evaluated learner turn plus the subtopic state it lands on.
type Input struct {
	Topic        string
	Subtopic     string
	Answer       string
	Quality      assess.Quality
	Status       Status
	Requirements SubtopicRequirements
}

// Outcome is the orchestrator's decision for the turn. Delta has not been
// applied to the input status; the caller merges it atomically.
type Outcome struct {
	Phase      Phase
	NextAction NextAction
	Reason     CompletionReason
	Delta      Delta
}

// Evaluate runs the triaging rules against one turn.
func (o *Orchestrator) Evaluate(ctx context.Context, in Input) Outcome {
	req := in.Requirements.normalize()
	status := in.Status
	used := status.QuestionsUsed
	if used < 0 {
		used = 0
	}

	// Escape valve. Checked before everything else so no combination of
	// gaps can hold a learner past the budget.
	if used+1 >= req.MaxQuestions {
		return Outcome{
			Phase:      PhaseComplete,
			NextAction: ActionCompleteSubtopic,
			Reason:     ReasonBudgetExhausted,
			Delta:      Delta{QuestionsUsed: used + 1},
		}
	}

	if !status.HasInitialAssessment {
		analysis := o.analyzer.Analyze(ctx, in.Answer, in.Subtopic, in.Topic)
		return Outcome{
			Phase:      PhaseInitialAssessment,
			NextAction: probeAction(in.Quality),
			Delta: Delta{
				MarkInitialAssessment: true,
				Analysis:              analysis,
				QuestionsUsed:         used + 1,
			},
		}
	}

	analysis := status.Analysis
	if analysis == nil {
		analysis = &gaps.Analysis{}
	}

	if gap, ok := firstUnaddressed(analysis.CriticalGaps, status.AddressedGaps); ok {
		d := Delta{QuestionsUsed: used + 1}
		if answeredWell(in.Quality) {
			d.AddressGaps = []string{gap}
		}
		return Outcome{
			Phase:      PhaseTargetedRemediation,
			NextAction: probeAction(in.Quality),
			Delta:      d,
		}
	}

	if gap, ok := firstUnaddressed(analysis.ImportantGaps, status.AddressedGaps); ok && used < req.MaxQuestions-1 {
		d := Delta{QuestionsUsed: used + 1}
		if answeredWell(in.Quality) {
			d.AddressGaps = []string{gap}
		}
		return Outcome{
			Phase:      PhaseTargetedRemediation,
			NextAction: probeAction(in.Quality),
			Delta:      d,
		}
	}

	if req.MustTestApplication && !status.HasTestedApplication && used < req.MaxQuestions {
		return Outcome{
			Phase:      PhaseApplication,
			NextAction: probeAction(in.Quality),
			Delta: Delta{
				MarkTestedApplication: true,
				QuestionsUsed:         used + 1,
			},
		}
	}

	if remaining := unacknowledged(analysis, status); len(remaining) > 0 && len(status.AcknowledgedGaps) == 0 {
		return Outcome{
			Phase:      PhaseGapAcknowledgment,
			NextAction: ActionContinueConversation,
			Delta: Delta{
				AcknowledgeGaps: remaining,
				QuestionsUsed:   used + 1,
			},
		}
	}

	return Outcome{
		Phase:      PhaseComplete,
		NextAction: ActionCompleteSubtopic,
		Reason:     ReasonMastery,
		Delta:      Delta{QuestionsUsed: used + 1},
	}
}

// probeAction picks between explaining and asking the next question. A
// confused learner gets the explanation before the probe.
func probeAction(q assess.Quality) NextAction {
	if q == assess.QualityConfused {
		return ActionExplain
	}
	return ActionContinueConversation
}

// answeredWell reports whether the turn's quality is high enough to mark
// the gap it targeted as addressed.
func answeredWell(q assess.Quality) bool {
	return q == assess.QualityExcellent || q == assess.QualityGood
}

// firstUnaddressed returns the first gap in list that has not been marked
// addressed yet.
func firstUnaddressed(list, addressed []string) (string, bool) {
	for _, g := range list {
		if !contains(addressed, g) {
			return g, true
		}
	}
	return "", false
}

// unacknowledged collects the important and minor gaps that were never
// addressed or acknowledged. These are surfaced once before completion so
// the learner leaves knowing what to review.
func unacknowledged(analysis *gaps.Analysis, status Status) []string {
	var out []string
	for _, g := range analysis.ImportantGaps {
		if !contains(status.AddressedGaps, g) && !contains(status.AcknowledgedGaps, g) {
			out = append(out, g)
		}
	}
	for _, g := range analysis.MinorGaps {
		if !contains(status.AddressedGaps, g) && !contains(status.AcknowledgedGaps, g) {
			out = append(out, g)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
