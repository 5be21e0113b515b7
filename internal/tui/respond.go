package tui

import (
	"fmt"

	"github.com/oslerai/preceptor/internal/session"
	"github.com/oslerai/preceptor/internal/triage"
)

// Compose turns an engine decision into the tutor's next line. The decision
// engine only picks actions; all wording lives here.
func Compose(s *session.Session, res *session.TurnResult) string {
	if !res.Classification.RequiresAssessment {
		if res.Classification.SuggestedResponse != "" {
			return res.Classification.SuggestedResponse
		}
		return "Let's keep going. " + nextProbe(s, res)
	}

	if res.Transition != nil {
		return composeTransition(s, res)
	}

	switch res.NextAction {
	case triage.ActionExplain:
		return composeExplanation(res) + " " + nextProbe(s, res)
	default:
		return gradeAck(res) + " " + nextProbe(s, res)
	}
}

// composeTransition announces the subtopic verdict and opens the next one.
func composeTransition(s *session.Session, res *session.TurnResult) string {
	tr := res.Transition

	var line string
	switch tr.Status {
	case session.MasteryUnderstood:
		line = fmt.Sprintf("Solid work on %s. You clearly have it.", tr.CompletedTitle)
	case session.MasteryShaky:
		line = fmt.Sprintf("That wraps up %s. It's mostly there, but worth another pass when you review.", tr.CompletedTitle)
	default:
		line = fmt.Sprintf("We're out of time on %s. Make a note to revisit it; there are gaps left.", tr.CompletedTitle)
	}

	if tr.SessionDone {
		return line + " That was the last subtopic. " + sessionSummary(s)
	}
	if tr.RetentionProbe != "" {
		return line + fmt.Sprintf(" Before we move on, a quick check: how would you summarize %s in one sentence?", tr.RetentionProbe)
	}
	if cur := s.Current(); cur != nil {
		return line + fmt.Sprintf(" Next up: %s. What do you already know about it?", cur.Title)
	}
	return line
}

// composeExplanation acknowledges confusion before the next probe.
func composeExplanation(res *session.TurnResult) string {
	if len(res.SurfacedGaps) > 0 {
		return fmt.Sprintf("No problem, let's slow down. The key piece here: %s.", res.SurfacedGaps[0].Description)
	}
	return "No problem, let's take that step by step."
}

// gradeAck gives brief verbal feedback proportional to the grade.
func gradeAck(res *session.TurnResult) string {
	switch res.Grade.Quality {
	case "excellent":
		return "Excellent, that's exactly the reasoning I was looking for."
	case "good":
		return "Good, that's the right idea."
	case "partial":
		return "Partly right, but there's more to it."
	case "incorrect":
		return "Not quite."
	default:
		return "Let's work through it together."
	}
}

// nextProbe picks the next question from the surfaced gaps, falling back to
// a generic prompt.
func nextProbe(s *session.Session, res *session.TurnResult) string {
	if res.Phase == triage.PhaseApplication {
		if cur := s.Current(); cur != nil {
			return fmt.Sprintf("Apply it: a patient walks in where %s is the issue. What do you do first?", cur.Title)
		}
	}
	if res.Phase == triage.PhaseGapAcknowledgment && len(res.SurfacedGaps) > 0 {
		return fmt.Sprintf("One thing to file away for later review: %s. Ready to continue?", res.SurfacedGaps[0].Description)
	}
	if len(res.SurfacedGaps) > 0 {
		return fmt.Sprintf("Tell me more about this: %s.", res.SurfacedGaps[0].Description)
	}
	if cur := s.Current(); cur != nil {
		return fmt.Sprintf("What else can you tell me about %s?", cur.Title)
	}
	return "What else can you tell me?"
}

// sessionSummary lists every subtopic with its verdict.
func sessionSummary(s *session.Session) string {
	out := "Here's where you stand:"
	for _, sub := range s.Subtopics {
		out += fmt.Sprintf(" %s: %s.", sub.Title, sub.Status)
	}
	return out
}
