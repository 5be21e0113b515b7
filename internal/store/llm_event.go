package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oslerai/preceptor/internal/llm"
)

// LLMEvent is one recorded model call.
type LLMEvent struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RecordLLMRequest implements llm.EventSink. Request and response bodies
// are not persisted; the structured log carries them when debugging.
func (s *Store) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		boolToInt(ev.Success), ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

// ListLLMEvents returns the most recent model calls, newest first.
func (s *Store) ListLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		var success int
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Provider, &ev.Model, &ev.Purpose,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		ev.Success = success != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}

// TokenTotals sums input and output tokens across all recorded calls.
func (s *Store) TokenTotals(ctx context.Context) (input, output int64, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0) FROM llm_events`)
	if err := row.Scan(&input, &output); err != nil {
		return 0, 0, fmt.Errorf("sum tokens: %w", err)
	}
	return input, output, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
