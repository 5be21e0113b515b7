package assess

import (
	"strings"

	"github.com/oslerai/preceptor/internal/interaction"
)

// bare yes/no answers are wrong-but-coherent, not confused.
var bareAnswers = map[string]bool{
	"yes": true, "no": true, "yeah": true, "nope": true, "ok": true,
	"okay": true,
}

// HeuristicGrade is the deterministic fallback grader used whenever the
// model call fails, times out, or returns unusable output. Identical input
// always yields an identical grade.
func HeuristicGrade(answer string) Quality {
	trimmed := strings.TrimSpace(answer)
	lower := strings.ToLower(trimmed)

	if interaction.IsStruggling(answer) {
		return QualityConfused
	}
	if len(trimmed) < 5 && !bareAnswers[lower] {
		return QualityConfused
	}

	vocab := HasClinicalVocabulary(trimmed)
	causal := HasCausalLanguage(trimmed)

	switch {
	case vocab && causal && len(trimmed) > 30:
		return QualityGood
	case vocab || causal:
		return QualityPartial
	case len(trimmed) > 20:
		return QualityPartial
	default:
		return QualityIncorrect
	}
}

// heuristicReasoningScore is the deterministic fallback for the reasoning
// scorer: a rough proxy built from causal connectives and answer length.
func heuristicReasoningScore(answer string) ReasoningScore {
	trimmed := strings.TrimSpace(answer)

	score := 0.0
	var strengths []string

	if HasClinicalVocabulary(trimmed) {
		score += 0.2
		strengths = append(strengths, "uses clinical vocabulary")
	}

	connectives := countCausalConnectives(trimmed)
	if connectives > 0 {
		bonus := 0.2 * float64(connectives)
		if bonus > 0.6 {
			bonus = 0.6
		}
		score += bonus
		strengths = append(strengths, "links cause and effect explicitly")
	}

	if len(trimmed) > 80 {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}

	return ReasoningScore{
		Score:     score,
		Strengths: strengths,
		Source:    SourceHeuristic,
	}
}
