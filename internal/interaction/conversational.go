package interaction

import "strings"

// Words the tutor uses when asking whether the learner wants to proceed.
var readinessCues = []string{
	"ready", "shall we", "want to move on", "move on to", "start with",
	"shall i continue", "want to continue", "begin with",
}

// Learner confirmations to a readiness question, matched exactly.
var readinessConfirmations = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true, "ok": true,
	"okay": true, "sure": true, "ready": true, "let's go": true,
	"lets go": true, "go ahead": true, "sounds good": true,
	"yes please": true, "i'm ready": true, "im ready": true,
}

// Question openers that mark a clarification request rather than an answer.
var clarificationPrefixes = []string{
	"what ", "what's", "whats", "how ", "when ", "why ", "where ",
	"which ", "can you", "could you", "do you mean", "sorry, what",
	"wait, what",
}

// IsConversational reports whether the utterance is conversational traffic
// rather than a substantive answer: confirming readiness after the tutor
// asked, requesting clarification, asking for (non-struggling) help, or a
// very short non-struggle response. Conversational turns produce no
// assessment and no counter updates.
func IsConversational(utterance, lastTutorUtterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	lower := strings.ToLower(trimmed)
	lastLower := strings.ToLower(lastTutorUtterance)

	// (a) Readiness confirmation, only when the tutor actually asked.
	if strings.Contains(lastLower, "?") && matchesAny(lastLower, readinessCues) {
		if readinessConfirmations[strings.TrimRight(lower, "!. ")] {
			return true
		}
	}

	// (b) Clarification request.
	for _, p := range clarificationPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}

	// (c) Help request that is not a struggle signal.
	if strings.Contains(lower, "help") && !IsStruggling(utterance) {
		return true
	}

	// (d) Very short and not struggling: "yes", "ok", etc.
	if len(trimmed) < 6 && !IsStruggling(utterance) {
		return true
	}

	return false
}
