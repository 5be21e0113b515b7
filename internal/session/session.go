// Package session holds the dialogue session model and the turn engine
// that drives one learner utterance through classification, grading, gap
// analysis and triaging.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/oslerai/preceptor/internal/triage"
)

// MasteryStatus is the per-subtopic outcome recorded when triaging
// completes. A fresh subtopic is unassessed.
type MasteryStatus string

const (
	MasteryUnassessed MasteryStatus = "unassessed"
	MasteryGap        MasteryStatus = "gap"
	MasteryShaky      MasteryStatus = "shaky"
	MasteryUnderstood MasteryStatus = "understood"
)

// Role labels who produced a message.
type Role string

const (
	RoleLearner Role = "learner"
	RoleTutor   Role = "tutor"
)

// Message is one line of the session transcript.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Subtopic is one unit of the topic's curriculum, with its own triaging
// state and final mastery verdict.
type Subtopic struct {
	Title  string                  `json:"title"`
	Status MasteryStatus           `json:"status"`
	Triage triage.Status           `json:"triage"`
	Reason triage.CompletionReason `json:"reason,omitempty"`

	// CorrectAnswers counts assessed turns graded excellent or good.
	// Together with Triage.QuestionsUsed it gives the per-subtopic hit
	// rate; a fresh subtopic starts both at zero.
	CorrectAnswers int `json:"correctAnswers"`
}

// Session is a full tutoring conversation over one topic.
type Session struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Subtopics []Subtopic `json:"subtopics"`

	// CurrentIndex points at the subtopic being triaged. Equal to
	// len(Subtopics) once every subtopic is complete.
	CurrentIndex int `json:"currentIndex"`

	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session over the given subtopic titles.
func New(topic string, subtopics []string) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, title := range subtopics {
		s.Subtopics = append(s.Subtopics, Subtopic{
			Title:  title,
			Status: MasteryUnassessed,
			Triage: triage.NewStatus(),
		})
	}
	return s
}

// Complete reports whether every subtopic has been triaged.
func (s *Session) Complete() bool {
	return s.clampIndex() >= len(s.Subtopics)
}

// Current returns the subtopic under triage, or nil if the session is
// complete or has no subtopics.
func (s *Session) Current() *Subtopic {
	i := s.clampIndex()
	if i >= len(s.Subtopics) {
		return nil
	}
	return &s.Subtopics[i]
}

// clampIndex repairs an index that drifted out of range, for example
// after a hand-edited session file. Negative indexes snap to the first
// incomplete subtopic rather than failing the session.
func (s *Session) clampIndex() int {
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
	if s.CurrentIndex > len(s.Subtopics) {
		s.CurrentIndex = len(s.Subtopics)
	}
	return s.CurrentIndex
}

// Append records a transcript line and bumps the session clock.
func (s *Session) Append(role Role, content string) {
	now := time.Now()
	s.Messages = append(s.Messages, Message{Role: role, Content: content, At: now})
	s.UpdatedAt = now
}

// LastTutorLine returns the most recent tutor message, or "" if the tutor
// has not spoken yet. Classification uses it to anchor topic relevance.
func (s *Session) LastTutorLine() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleTutor {
			return s.Messages[i].Content
		}
	}
	return ""
}

// RecentLearnerLines returns up to n most recent learner messages, oldest
// first. The prioritizer reads these for confusion signals.
func (s *Session) RecentLearnerLines(n int) []string {
	var out []string
	for i := len(s.Messages) - 1; i >= 0 && len(out) < n; i-- {
		if s.Messages[i].Role == RoleLearner {
			out = append(out, s.Messages[i].Content)
		}
	}
	// Collected newest first; reverse into transcript order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
