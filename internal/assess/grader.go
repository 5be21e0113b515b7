// Package assess grades answer quality on a 5-point scale and scores
// clinical reasoning. Every model-backed path degrades through a fixed
// chain (structured output, then substring scan, then heuristic) so a
// dead gateway never stalls or aborts a turn.
package assess

import (
	"context"
	"strings"

	"github.com/oslerai/preceptor/internal/interaction"
	"github.com/oslerai/preceptor/internal/llm"
)

// Config holds grading call settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading wants low temperature:
// the rubric, not the sampler, should decide.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Grader grades answers via the model with heuristic fallback.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// NewGrader creates a Grader. A nil provider is allowed and forces the
// heuristic path, which is also how the fallback is tested.
func NewGrader(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// Grade grades one answer. It never returns an error: any failure between
// here and the model resolves to the deterministic heuristic.
func (g *Grader) Grade(ctx context.Context, in GradeInput) Grade {
	// Struggle signals and empty answers skip the model entirely.
	if interaction.IsStruggling(in.Answer) || len(strings.TrimSpace(in.Answer)) < 2 {
		return Grade{Quality: QualityConfused, Source: SourceRule}
	}

	if g.provider == nil {
		return Grade{Quality: HeuristicGrade(in.Answer), Source: SourceHeuristic}
	}

	ctx = llm.WithPurpose(ctx, "answer-grade")

	userMsg, err := buildGradeMessage(in)
	if err != nil {
		return Grade{Quality: HeuristicGrade(in.Answer), Source: SourceHeuristic}
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      gradeSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return Grade{Quality: HeuristicGrade(in.Answer), Source: SourceHeuristic}
	}

	outcome := decodeGrade(resp.Content)
	if outcome.ok {
		return Grade{
			Quality:      Quality(outcome.grade.Quality),
			SpecificGaps: outcome.grade.SpecificGaps,
			Source:       SourceModel,
		}
	}

	if q, found := scanQuality(outcome.raw); found {
		return Grade{Quality: q, Source: SourceScan}
	}

	return Grade{Quality: HeuristicGrade(in.Answer), Source: SourceHeuristic}
}

// Scorer scores clinical reasoning structure via the model with heuristic
// fallback. Independent of the Grader; the engine runs the two concurrently.
type Scorer struct {
	provider llm.Provider
	cfg      Config
}

// NewScorer creates a Scorer. A nil provider forces the heuristic path.
func NewScorer(provider llm.Provider, cfg Config) *Scorer {
	return &Scorer{provider: provider, cfg: cfg}
}

// Score scores one answer's reasoning. Never returns an error.
func (s *Scorer) Score(ctx context.Context, question, answer string) ReasoningScore {
	if interaction.IsStruggling(answer) {
		return ReasoningScore{Score: 0, Source: SourceRule}
	}

	if s.provider == nil {
		return heuristicReasoningScore(answer)
	}

	ctx = llm.WithPurpose(ctx, "reasoning-score")

	userMsg, err := buildReasoningMessage(question, answer)
	if err != nil {
		return heuristicReasoningScore(answer)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      reasoningSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      ReasoningSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return heuristicReasoningScore(answer)
	}

	if out, ok := decodeReasoning(resp.Content); ok {
		return ReasoningScore{Score: out.Score, Strengths: out.Strengths, Source: SourceModel}
	}

	return heuristicReasoningScore(answer)
}
