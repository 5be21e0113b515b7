package interaction

// Type labels what kind of turn the learner just took. Everything except
// TypeAssessment is a non-learning interaction that short-circuits grading.
type Type string

const (
	TypeEmotionalSupport   Type = "emotional_support"
	TypeGiveUp             Type = "give_up"
	TypePersonalCasual     Type = "personal_casual"
	TypeMedicalAdvice      Type = "medical_advice"
	TypeChallengeAuthority Type = "challenge_authority"
	TypeMetaLearning       Type = "meta_learning"
	TypeTechnicalIssue     Type = "technical_issue"
	TypeOffTopic           Type = "off_topic"

	// TypeAssessment is the default: the utterance looks like a substantive
	// answer and should flow into grading and gap analysis.
	TypeAssessment Type = "requires_assessment"
)

// Classification is the per-turn routing decision. Ephemeral; recomputed
// every turn and never stored.
type Classification struct {
	Type               Type
	Confidence         float64
	RequiresAssessment bool

	// SuggestedResponse is a topic-parameterized line from the phrase bank,
	// set only for non-assessment types. The rendering layer may use it
	// verbatim or feed it to a prose generator.
	SuggestedResponse string
}
