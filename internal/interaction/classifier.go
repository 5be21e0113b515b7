// Package interaction routes learner utterances: non-learning turns
// (distress, giving up, small talk, advice-seeking, …) get a templated
// response and skip assessment entirely; everything else flows into grading.
// It also owns the two predicates the rest of the engine reuses,
// IsStruggling and IsConversational.
package interaction

import (
	"math/rand/v2"
	"strings"
)

// Classifier routes utterances to interaction types. The random source only
// influences phrase-bank selection, never the classification itself.
type Classifier struct {
	rng      *rand.Rand
	families []patternFamily
}

// NewClassifier creates a classifier with the given random source. Pass a
// seeded source (rand.New(rand.NewPCG(…))) for deterministic phrase choice
// in tests; nil uses the process-wide source.
func NewClassifier(rng *rand.Rand) *Classifier {
	return &Classifier{
		rng:      rng,
		families: classifierFamilies(),
	}
}

// Classify tests the pattern families in strict precedence order against
// the trimmed, lowercased utterance; the first match wins. No family
// matching falls through to the off-topic heuristic, and finally to the
// default "requires assessment".
func (c *Classifier) Classify(utterance, lastTutorUtterance, topic string) Classification {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	for _, fam := range c.families {
		if matchesAny(lower, fam.patterns) {
			return c.nonAssessment(fam.kind, fam.confidence, topic)
		}
	}

	if c.isOffTopic(lower, lastTutorUtterance, topic) {
		return c.nonAssessment(TypeOffTopic, 0.6, topic)
	}

	return Classification{
		Type:               TypeAssessment,
		Confidence:         1.0,
		RequiresAssessment: true,
	}
}

func (c *Classifier) nonAssessment(kind Type, confidence float64, topic string) Classification {
	return Classification{
		Type:               kind,
		Confidence:         confidence,
		RequiresAssessment: false,
		SuggestedResponse:  suggestedResponse(kind, topic, c.pick),
	}
}

func (c *Classifier) pick(n int) int {
	if n <= 1 {
		return 0
	}
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}

// isOffTopic flags utterances that sound medical but name none of the
// current topic's terms. An answer that echoes words from the tutor's last
// question counts as on-topic, so terse responses to the live question are
// not misrouted. Short utterances are exempt outright.
func (c *Classifier) isOffTopic(lower, lastTutorUtterance, topic string) bool {
	if len(lower) <= 20 {
		return false
	}

	generic := false
	for _, term := range genericMedicalTerms {
		if strings.Contains(lower, term) {
			generic = true
			break
		}
	}
	if !generic {
		return false
	}

	for _, term := range topicTerms(topic) {
		if strings.Contains(lower, term) {
			return false
		}
	}
	for _, term := range topicTerms(lastTutorUtterance) {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
