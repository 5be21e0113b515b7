package assess

// Quality is the 5-point answer grade.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityPartial   Quality = "partial"
	QualityIncorrect Quality = "incorrect"
	QualityConfused  Quality = "confused"
)

// qualityScanOrder is the priority order for the substring scan over
// malformed model output: the strongest claim in the text wins.
var qualityScanOrder = []Quality{
	QualityExcellent,
	QualityGood,
	QualityPartial,
	QualityIncorrect,
	QualityConfused,
}

// ValidQuality reports whether s is one of the five grade values.
func ValidQuality(s string) bool {
	switch Quality(s) {
	case QualityExcellent, QualityGood, QualityPartial, QualityIncorrect, QualityConfused:
		return true
	}
	return false
}

// GradeInput is the context for grading one answer.
type GradeInput struct {
	Answer   string
	Question string
	Topic    string
	Subtopic string
}

// GradeSource records which stage produced the grade, for telemetry and
// fallback-path tests.
type GradeSource string

const (
	SourceRule      GradeSource = "rule"      // struggle/empty short-circuit
	SourceModel     GradeSource = "model"     // clean structured output
	SourceScan      GradeSource = "scan"      // substring scan of malformed output
	SourceHeuristic GradeSource = "heuristic" // deterministic fallback
)

// Grade is the grading result. Produced fresh each turn, never mutated.
type Grade struct {
	Quality      Quality
	SpecificGaps []string
	Source       GradeSource
}

// ReasoningScore grades the causal structure of an answer, independent of
// factual quality. Computed concurrently with the grade; the two are joined
// when the turn result is assembled.
type ReasoningScore struct {
	// Score is 0.0–1.0.
	Score float64

	// Strengths are short descriptions of sound reasoning moves observed.
	Strengths []string

	Source GradeSource
}
