package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CompletionEvent records one subtopic reaching the complete phase, with
// the reason that ended it.
type CompletionEvent struct {
	ID            int64
	CreatedAt     time.Time
	SessionID     string
	Subtopic      string
	Reason        string
	Status        string
	QuestionsUsed int
}

// AppendCompletion records a completion event.
func (s *Store) AppendCompletion(ctx context.Context, ev CompletionEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO completion_events (session_id, subtopic, reason, status, questions_used)
		 VALUES (?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Subtopic, ev.Reason, ev.Status, ev.QuestionsUsed)
	if err != nil {
		return fmt.Errorf("insert completion event: %w", err)
	}
	return nil
}

// CompletionCounts breaks down completions by reason, distinguishing
// mastery from budget exhaustion.
func (s *Store) CompletionCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT reason, COUNT(*) FROM completion_events GROUP BY reason`)
	if err != nil {
		return nil, fmt.Errorf("query completion reasons: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}

// StatusCounts breaks down completions by the mastery verdict.
func (s *Store) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM completion_events GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("query completion statuses: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}

// scanCounts reads (label, count) rows into a map.
func scanCounts(rows *sql.Rows) (map[string]int, error) {
	out := make(map[string]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("scan count row: %w", err)
		}
		out[label] = n
	}
	return out, rows.Err()
}
