package interaction

import "strings"

// Explicit confusion and deflection signals. Matched as substrings of the
// lowercased utterance.
var struggleSignals = []string{
	"i don't know", "i dont know", "idk", "no idea", "no clue",
	"not sure", "confused", "don't understand", "dont understand",
	"i'm lost", "im lost", "don't get it", "dont get it",
	"give me a hint", "hint please", "can i get a hint",
	"just tell me", "tell me the answer",
}

// Vague one-word evasions, matched exactly.
var vagueAnswers = map[string]bool{
	"maybe": true, "something": true, "stuff": true, "things": true,
	"umm": true, "um": true, "uh": true, "hmm": true, "dunno": true,
}

// Bare confirmations exempt from the short-answer rule: "yes" is an answer,
// not a struggle.
var bareConfirmations = map[string]bool{
	"yes": true, "no": true, "yeah": true, "yep": true, "yup": true,
	"nope": true, "ok": true, "okay": true, "sure": true,
	"right": true, "correct": true, "true": true, "false": true,
}

// IsStruggling reports whether the utterance signals the learner is stuck:
// explicit confusion, a hint request, a vague evasion, a trailing question
// mark (fishing for the answer), or a very short non-confirmation. Pure and
// deterministic; the classifier, the grader, and the orchestrator all share
// this single definition.
func IsStruggling(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	lower := strings.ToLower(trimmed)

	if matchesAny(lower, struggleSignals) {
		return true
	}
	if vagueAnswers[lower] {
		return true
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	if len(trimmed) < 8 && !bareConfirmations[lower] {
		return true
	}
	return false
}
