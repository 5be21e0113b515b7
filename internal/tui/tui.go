// Package tui is the chat interface over the tutoring engine. The engine
// decides what kind of move comes next; this package words it and paints
// the transcript.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oslerai/preceptor/internal/session"
	"github.com/oslerai/preceptor/internal/store"
)

// turnDoneMsg is sent when the engine has evaluated a learner utterance.
type turnDoneMsg struct {
	Result *session.TurnResult
	Reply  string
	Err    error
}

// persistDoneMsg is sent when the post-turn snapshot and events are saved.
type persistDoneMsg struct {
	Err error
}

// Model is the root Bubble Tea model.
type Model struct {
	engine *session.Engine
	sess   *session.Session
	st     *store.Store

	input   textinput.Model
	width   int
	height  int
	busy    bool
	done    bool
	errLine string
}

// New builds the chat model. st may be nil to run without persistence.
func New(engine *session.Engine, sess *session.Session, st *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	return Model{
		engine: engine,
		sess:   sess,
		st:     st,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	if len(m.sess.Messages) == 0 {
		m.openingLine()
	}
	return m.input.Focus()
}

// openingLine seeds the transcript so the learner has something to answer.
func (m Model) openingLine() {
	cur := m.sess.Current()
	if cur == nil {
		return
	}
	m.sess.Append(session.RoleTutor, fmt.Sprintf(
		"Today we're covering %s, starting with %s. Tell me what you know about it.",
		m.sess.Topic, cur.Title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.done {
				return m, tea.Quit
			}
			if m.busy {
				return m, nil
			}
			utterance := strings.TrimSpace(m.input.Value())
			if utterance == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.busy = true
			return m, m.runTurn(utterance)
		}

	case turnDoneMsg:
		m.busy = false
		if msg.Err != nil {
			if errors.Is(msg.Err, session.ErrSessionComplete) {
				m.done = true
				return m, nil
			}
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.errLine = ""
		m.sess.Append(session.RoleTutor, msg.Reply)
		if msg.Result.Transition != nil && msg.Result.Transition.SessionDone {
			m.done = true
		}
		return m, m.persist(msg.Result)

	case persistDoneMsg:
		if msg.Err != nil {
			m.errLine = "save failed: " + msg.Err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runTurn evaluates the utterance off the UI goroutine.
func (m Model) runTurn(utterance string) tea.Cmd {
	sess, engine := m.sess, m.engine
	return func() tea.Msg {
		res, err := engine.ProcessTurn(context.Background(), sess, utterance)
		if err != nil {
			return turnDoneMsg{Err: err}
		}
		return turnDoneMsg{Result: res, Reply: Compose(sess, res)}
	}
}

// persist saves the snapshot and telemetry for a finished turn.
func (m Model) persist(res *session.TurnResult) tea.Cmd {
	if m.st == nil {
		return nil
	}
	st, sess := m.st, m.sess
	// The turn belongs to the subtopic it was evaluated against, which is
	// the completed one when this turn crossed a boundary.
	subtopic := ""
	if res.Transition != nil {
		subtopic = res.Transition.CompletedTitle
	} else if cur := sess.Current(); cur != nil {
		subtopic = cur.Title
	}
	return func() tea.Msg {
		ctx := context.Background()

		ev := store.TurnEvent{
			SessionID:       sess.ID,
			Subtopic:        subtopic,
			InteractionType: string(res.Classification.Type),
			Phase:           string(res.Phase),
			NextAction:      string(res.NextAction),
		}
		if res.Assessed {
			ev.Quality = string(res.Grade.Quality)
			ev.GradeSource = string(res.Grade.Source)
		}
		if err := st.AppendTurn(ctx, ev); err != nil {
			return persistDoneMsg{Err: err}
		}

		if tr := res.Transition; tr != nil {
			cev := store.CompletionEvent{
				SessionID: sess.ID,
				Subtopic:  tr.CompletedTitle,
				Status:    string(tr.Status),
			}
			for _, sub := range sess.Subtopics {
				if sub.Title == tr.CompletedTitle {
					cev.Reason = string(sub.Reason)
					cev.QuestionsUsed = sub.Triage.QuestionsUsed
				}
			}
			if err := st.AppendCompletion(ctx, cev); err != nil {
				return persistDoneMsg{Err: err}
			}
		}

		return persistDoneMsg{Err: st.SaveSession(ctx, sess)}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	header := headerStyle.Render("preceptor · "+m.sess.Topic) + "\n" +
		subtopicStyle.Render(m.progressLine())

	transcript := m.renderTranscript(m.height - lipgloss.Height(header) - 4)

	var bottom string
	switch {
	case m.done:
		bottom = hintStyle.Render("Session complete. Enter to exit.")
	case m.busy:
		bottom = hintStyle.Render("Thinking...")
	default:
		bottom = m.input.View()
	}

	footer := hintStyle.Render("Enter: send · Esc: quit")
	if m.errLine != "" {
		footer = verdictStyles["gap"].Render(m.errLine)
	}

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, transcript, bottom, footer))
	return v
}

// progressLine shows per-subtopic verdicts in order.
func (m Model) progressLine() string {
	var parts []string
	for i, sub := range m.sess.Subtopics {
		label := sub.Title
		if i == m.sess.CurrentIndex {
			label = "[" + label + "]"
		}
		if style, ok := verdictStyles[string(sub.Status)]; ok && sub.Status != session.MasteryUnassessed {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " · ")
}

// renderTranscript paints the most recent lines that fit.
func (m Model) renderTranscript(maxHeight int) string {
	if maxHeight < 1 {
		maxHeight = 1
	}
	var lines []string
	for _, msg := range m.sess.Messages {
		var rendered string
		if msg.Role == session.RoleTutor {
			rendered = tutorLabel.Render("tutor: ") + tutorStyle.Render(msg.Content)
		} else {
			rendered = learnerLabel.Render("you: ") + learnerStyle.Render(msg.Content)
		}
		lines = append(lines, lipgloss.NewStyle().Width(m.width-2).Render(rendered))
	}

	joined := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(joined) > maxHeight {
		joined = joined[len(joined)-maxHeight:]
	}
	return strings.Join(joined, "\n")
}

// Run starts the Bubble Tea program.
func Run(engine *session.Engine, sess *session.Session, st *store.Store) error {
	_, err := tea.NewProgram(New(engine, sess, st)).Run()
	return err
}
