package interaction

import "strings"

// patternFamily is one precedence tier of the classifier. Families are
// evaluated in order and the first match wins, so an utterance that is both
// distressed and medical routes to emotional support, never to the advice
// deflection.
type patternFamily struct {
	kind       Type
	confidence float64
	patterns   []string
}

// classifierFamilies returns the pattern families in strict precedence
// order: emotional distress → give-up → personal/casual → advice-seeking →
// authority challenge → meta-learning → technical issue. Off-topic is a
// separate heuristic, not a substring family.
func classifierFamilies() []patternFamily {
	return []patternFamily{
		{
			kind:       TypeEmotionalSupport,
			confidence: 0.9,
			patterns: []string{
				"i'm so stressed", "im so stressed", "stressed out",
				"overwhelmed", "anxious", "panicking", "freaking out",
				"i'm scared", "im scared", "want to cry", "crying",
				"burnt out", "burned out", "i can't do this", "i cant do this",
				"i'm so confused", "im so confused", "so frustrated",
				"i feel stupid", "i feel dumb", "hate myself",
			},
		},
		{
			kind:       TypeGiveUp,
			confidence: 0.85,
			patterns: []string{
				"i give up", "giving up", "i quit", "can we stop",
				"i'm done", "im done", "this is pointless", "what's the point",
				"stop asking", "don't want to continue", "dont want to continue",
				"let's stop", "lets stop", "forget it",
			},
		},
		{
			kind:       TypePersonalCasual,
			confidence: 0.8,
			patterns: []string{
				"how are you", "what's your name", "whats your name",
				"who are you", "where are you from", "do you like",
				"tell me about yourself", "what do you do for fun",
				"good morning", "good evening", "hey there", "nice to meet you",
			},
		},
		{
			kind:       TypeMedicalAdvice,
			confidence: 0.85,
			patterns: []string{
				"my patient", "should i take", "i have a headache",
				"my mom has", "my dad has", "my friend has", "my sister has",
				"my brother has", "i've been having", "ive been having",
				"my symptoms", "should i see a doctor", "diagnose me",
				"what should i do about my", "is it safe for me",
			},
		},
		{
			kind:       TypeChallengeAuthority,
			confidence: 0.8,
			patterns: []string{
				"you're wrong", "youre wrong", "that's wrong", "thats wrong",
				"that's not right", "thats not right", "are you sure",
				"i disagree", "my textbook says", "my professor said",
				"my attending said", "that's outdated", "thats outdated",
				"what's your source", "citation needed",
			},
		},
		{
			kind:       TypeMetaLearning,
			confidence: 0.8,
			patterns: []string{
				"how should i study", "study tips", "how do i memorize",
				"best way to learn", "am i making progress", "how am i doing",
				"what should i focus on", "study schedule", "how to prepare",
				"is this high yield for the exam", "will this be on the exam",
			},
		},
		{
			kind:       TypeTechnicalIssue,
			confidence: 0.8,
			patterns: []string{
				"can't see", "cant see", "not loading", "didn't load",
				"didnt load", "broken", "glitch", "error message",
				"frozen", "crashed", "can you repeat that", "cut off",
				"audio", "screen went",
			},
		},
	}
}

// genericMedicalTerms are domain words that signal a medical utterance
// without tying it to any particular topic. Used by the off-topic heuristic:
// medical-sounding but unrelated to the current topic.
var genericMedicalTerms = []string{
	"patient", "disease", "diagnosis", "treatment", "symptom", "syndrome",
	"clinical", "medicine", "medical", "drug", "therapy", "infection",
	"cancer", "cardiac", "surgery", "anatomy", "pharmacology",
}

// matchesAny reports whether the lowercased utterance contains any pattern.
func matchesAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// topicTerms extracts the meaningful words of a topic title for the
// off-topic check. Short connective words are skipped.
func topicTerms(topic string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		w = strings.Trim(w, ",.;:()?!")
		if len(w) > 3 {
			terms = append(terms, w)
		}
	}
	return terms
}
