package assess

import "strings"

// clinicalStems are domain vocabulary stems. Stem matching keeps the list
// short: "diagnos" covers diagnosis/diagnostic/diagnose.
var clinicalStems = []string{
	"risk", "cause", "diagnos", "treat", "symptom", "patient",
	"pathophysiolog", "mechanism", "infection", "inflammat", "pressure",
	"blood", "chronic", "acute", "syndrome", "arter", "ven", "tubal",
	"tube", "hormon", "cell", "lesion", "ischem", "necros", "perfus",
	"hypo", "hyper", "renal", "hepat", "cardi", "pulmon", "neuro",
	"gestat", "uter", "ovar", "surg", "pregnan", "rupture", "bleed",
	"stenosis", "embol", "thromb", "sepsis", "immune",
}

// causalConnectives mark explicit cause-and-effect reasoning.
var causalConnectives = []string{
	"because", "since", "due to", "leads to", "lead to", "results in",
	"resulting in", "causes", "caused by", "therefore", "thus",
	"as a result", "which means", "so that", "secondary to",
}

// HasClinicalVocabulary reports whether the text uses at least one domain
// vocabulary stem. Shared by the grading heuristic and the gap-analysis
// fallback.
func HasClinicalVocabulary(text string) bool {
	lower := strings.ToLower(text)
	for _, stem := range clinicalStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	return false
}

// HasCausalLanguage reports whether the text contains a causal-reasoning
// connective.
func HasCausalLanguage(text string) bool {
	lower := strings.ToLower(text)
	for _, c := range causalConnectives {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// countCausalConnectives counts distinct connectives present, for the
// reasoning-score fallback.
func countCausalConnectives(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, c := range causalConnectives {
		if strings.Contains(lower, c) {
			n++
		}
	}
	return n
}
