package gaps

import (
	"sort"
	"strings"

	"github.com/oslerai/preceptor/internal/interaction"
)

// Selection bounds: at most 3 critical gaps, at most 4 after filling with
// important gaps, at most 1 minor gap and only when fewer than 3 were
// already selected. The output can never exceed 5 entries, which caps the
// cognitive load surfaced in a single turn.
const (
	maxCriticalSurfaced = 3
	maxTotalSurfaced    = 4
	minBeforeMinor      = 3
)

// recentTurnWindow is how many trailing learner utterances the confusion
// signal looks at.
const recentTurnWindow = 6

// Keyword tables for the weighted score. Matched as substrings of the
// lowercased gap description.
var (
	// 0–40: gaps whose neglect carries patient risk.
	clinicalRiskKeywords = []string{
		"death", "fatal", "emergency", "shock", "hemorrhage", "bleeding",
		"rupture", "sepsis", "arrest", "failure", "anaphyla", "hypox",
		"airway", "unstable", "life-threatening", "missed diagnosis",
	}

	// 0–30: gaps in foundations everything else builds on.
	foundationalKeywords = []string{
		"mechanism", "pathophysiolog", "definition", "fundamental",
		"basic", "anatomy", "physiology", "cause", "classification",
		"first principle",
	}

	// 0–10: exam-classic material.
	highYieldKeywords = []string{
		"high-yield", "high yield", "classic", "common", "typical",
		"hallmark", "pathognomonic",
	}
)

// SessionContext carries the conversational history the prioritizer needs.
type SessionContext struct {
	// RecentLearnerUtterances are the learner's turns, oldest first. Only
	// the trailing window is inspected.
	RecentLearnerUtterances []string
}

// Score rates one gap 0–100: clinical risk (0–40) + foundational weight
// (0–30) + recent confusion signals (0–20) + high-yield relevance (0–10).
func Score(g Gap, sctx SessionContext) int {
	lower := strings.ToLower(g.Description)
	score := 0

	if containsAny(lower, clinicalRiskKeywords) {
		score += 40
	}
	if containsAny(lower, foundationalKeywords) {
		score += 30
	}
	score += confusionScore(sctx)
	if containsAny(lower, highYieldKeywords) {
		score += 10
	}

	return score
}

// confusionScore gives 10 points per struggling turn in the trailing
// window, capped at 20. A learner who has been lost recently needs the
// foundational gaps surfaced sooner.
func confusionScore(sctx SessionContext) int {
	utterances := sctx.RecentLearnerUtterances
	if len(utterances) > recentTurnWindow {
		utterances = utterances[len(utterances)-recentTurnWindow:]
	}

	score := 0
	for _, u := range utterances {
		if interaction.IsStruggling(u) {
			score += 10
			if score >= 20 {
				return 20
			}
		}
	}
	return score
}

// Prioritize selects which gaps to surface this turn. Critical gaps are
// serviced first (up to 3), the remaining slots (to a total of 4) go to the
// highest-scored important gaps, and a single minor gap is added only when
// fewer than 3 gaps were selected. The result never exceeds 5 entries no
// matter how large the input is.
func Prioritize(input []Gap, sctx SessionContext) []Gap {
	bySeverity := map[Severity][]Gap{}
	for _, g := range input {
		bySeverity[g.Severity] = append(bySeverity[g.Severity], g)
	}

	// Stable sort keeps detection order among equal scores.
	for _, sev := range []Severity{SeverityCritical, SeverityImportant, SeverityMinor} {
		gapsOf := bySeverity[sev]
		sort.SliceStable(gapsOf, func(i, j int) bool {
			return Score(gapsOf[i], sctx) > Score(gapsOf[j], sctx)
		})
	}

	var selected []Gap

	for _, g := range bySeverity[SeverityCritical] {
		if len(selected) >= maxCriticalSurfaced {
			break
		}
		selected = append(selected, g)
	}

	for _, g := range bySeverity[SeverityImportant] {
		if len(selected) >= maxTotalSurfaced {
			break
		}
		selected = append(selected, g)
	}

	if len(selected) < minBeforeMinor && len(bySeverity[SeverityMinor]) > 0 {
		selected = append(selected, bySeverity[SeverityMinor][0])
	}

	return selected
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
