// Package gaps decomposes answers into severity-bucketed knowledge gaps
// and bounds how many of them are surfaced to the learner at once.
package gaps

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/oslerai/preceptor/internal/assess"
	"github.com/oslerai/preceptor/internal/llm"
)

// Config holds analysis call settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Analyzer decomposes answers via the model with a deterministic fallback.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
}

// NewAnalyzer creates an Analyzer. A nil provider forces the fallback path.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// analysisOutput is the raw shape of the model's response. Fields that
// arrive as anything other than an array decode to nil and default to empty.
type analysisOutput struct {
	CriticalGaps  []string `json:"critical_gaps"`
	ImportantGaps []string `json:"important_gaps"`
	MinorGaps     []string `json:"minor_gaps"`
	StrengthAreas []string `json:"strength_areas"`
}

// Analyze decomposes one answer. It never returns an error: any failure
// resolves to the deterministic heuristic analysis.
func (a *Analyzer) Analyze(ctx context.Context, answer, subtopic, topic string) *Analysis {
	if a.provider == nil {
		return heuristicAnalysis(answer)
	}

	ctx = llm.WithPurpose(ctx, "gap-analysis")

	userMsg, err := buildAnalysisMessage(answer, subtopic, topic)
	if err != nil {
		return heuristicAnalysis(answer)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return heuristicAnalysis(answer)
	}

	var out analysisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return heuristicAnalysis(answer)
	}

	return &Analysis{
		CriticalGaps:  emptyIfNil(out.CriticalGaps),
		ImportantGaps: emptyIfNil(out.ImportantGaps),
		MinorGaps:     emptyIfNil(out.MinorGaps),
		StrengthAreas: emptyIfNil(out.StrengthAreas),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// heuristicAnalysis is the deterministic fallback, mirroring the grading
// heuristic's signals.
func heuristicAnalysis(answer string) *Analysis {
	trimmed := strings.TrimSpace(answer)
	a := &Analysis{
		CriticalGaps:  []string{},
		ImportantGaps: []string{},
		MinorGaps:     []string{},
		StrengthAreas: []string{},
	}

	switch {
	case len(trimmed) < 10:
		a.CriticalGaps = append(a.CriticalGaps,
			"insufficient detail to demonstrate understanding")
	case assess.HasClinicalVocabulary(trimmed) && len(trimmed) > 50:
		a.ImportantGaps = append(a.ImportantGaps,
			"depth of mechanism not yet demonstrated")
		a.MinorGaps = append(a.MinorGaps,
			"terminology could be more precise")
		a.StrengthAreas = append(a.StrengthAreas,
			"shows engagement with the material")
	default:
		a.CriticalGaps = append(a.CriticalGaps,
			"fundamental concepts need clarification")
	}

	return a
}
