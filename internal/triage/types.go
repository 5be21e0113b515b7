package triage

// Phase is the orchestrator's position in the per-subtopic state machine.
type Phase string

const (
	PhaseInitialAssessment   Phase = "initial_assessment"
	PhaseTargetedRemediation Phase = "targeted_remediation"
	PhaseApplication         Phase = "application"
	PhaseGapAcknowledgment   Phase = "gap_acknowledgment"
	PhaseComplete            Phase = "complete"
)

// NextAction tells the rendering layer what kind of tutor move comes next.
type NextAction string

const (
	ActionContinueConversation NextAction = "continue_conversation"
	ActionExplain              NextAction = "explain"
	ActionCompleteSubtopic     NextAction = "complete_subtopic"
)

// CompletionReason distinguishes the escape valve from genuine mastery in
// logs and telemetry. Budget exhaustion is designed behavior, not an error,
// but the two must never look the same downstream.
type CompletionReason string

const (
	ReasonNone            CompletionReason = ""
	ReasonBudgetExhausted CompletionReason = "budget_exhausted"
	ReasonMastery         CompletionReason = "mastery"
)

// SubtopicRequirements is the per-subtopic question budget. Pure function
// output, recomputed from the title each turn and never persisted.
type SubtopicRequirements struct {
	MaxQuestions           int
	MinQuestionsForMastery int
	MustTestApplication    bool
}
