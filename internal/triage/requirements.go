package triage

import "strings"

// conceptualFamily marks subtopics that test understanding of mechanism.
// These get a shorter budget and no mandatory application question.
var conceptualFamily = []string{"pathophysiolog", "mechanism", "definition"}

// clinicalFamily marks subtopics that test decisions a clinician makes.
// These must include at least one application question.
var clinicalFamily = []string{"management", "treatment", "diagnos", "presentation"}

// RequirementsFor derives the question budget from the subtopic title.
// Unrecognized titles get the conservative clinical defaults.
func RequirementsFor(subtopic string) SubtopicRequirements {
	title := strings.ToLower(subtopic)
	for _, stem := range conceptualFamily {
		if strings.Contains(title, stem) {
			return SubtopicRequirements{
				MaxQuestions:           6,
				MinQuestionsForMastery: 2,
				MustTestApplication:    false,
			}
		}
	}
	for _, stem := range clinicalFamily {
		if strings.Contains(title, stem) {
			return SubtopicRequirements{
				MaxQuestions:           8,
				MinQuestionsForMastery: 3,
				MustTestApplication:    true,
			}
		}
	}
	return SubtopicRequirements{
		MaxQuestions:           8,
		MinQuestionsForMastery: 3,
		MustTestApplication:    true,
	}
}

// normalize repairs a requirements value that was zero-initialized or
// corrupted by an out-of-band session edit.
func (r SubtopicRequirements) normalize() SubtopicRequirements {
	if r.MaxQuestions <= 0 {
		return RequirementsFor("")
	}
	if r.MinQuestionsForMastery <= 0 {
		r.MinQuestionsForMastery = 1
	}
	return r
}
