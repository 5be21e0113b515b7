package store

import (
	"context"
	"fmt"
	"time"
)

// TurnEvent records one evaluated dialogue turn.
type TurnEvent struct {
	ID              int64
	CreatedAt       time.Time
	SessionID       string
	Subtopic        string
	InteractionType string
	Quality         string
	GradeSource     string
	Phase           string
	NextAction      string
	QuestionsUsed   int
}

// AppendTurn records a turn event.
func (s *Store) AppendTurn(ctx context.Context, ev TurnEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turn_events
			(session_id, subtopic, interaction_type, quality, grade_source, phase, next_action, questions_used)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Subtopic, ev.InteractionType, ev.Quality,
		ev.GradeSource, ev.Phase, ev.NextAction, ev.QuestionsUsed)
	if err != nil {
		return fmt.Errorf("insert turn event: %w", err)
	}
	return nil
}

// GradeSourceCounts breaks down how often each grading path fired. A high
// heuristic share means the model was unreachable or misbehaving.
func (s *Store) GradeSourceCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT grade_source, COUNT(*) FROM turn_events
		 WHERE grade_source != '' GROUP BY grade_source`)
	if err != nil {
		return nil, fmt.Errorf("query grade sources: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}

// InteractionCounts breaks down turns by interaction type.
func (s *Store) InteractionCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT interaction_type, COUNT(*) FROM turn_events GROUP BY interaction_type`)
	if err != nil {
		return nil, fmt.Errorf("query interaction types: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}
