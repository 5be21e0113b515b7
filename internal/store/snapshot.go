package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oslerai/preceptor/internal/session"
)

// snapshotKeep is how many snapshots are retained per session.
const snapshotKeep = 20

// SaveSession appends a snapshot of the session and prunes old ones. The
// full session is stored as JSON so a crash mid-dialogue loses at most the
// turn in flight.
func (s *Store) SaveSession(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_snapshots (session_id, data) VALUES (?, ?)`,
		sess.ID, string(data))
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM session_snapshots
		 WHERE session_id = ? AND id NOT IN (
			SELECT id FROM session_snapshots WHERE session_id = ? ORDER BY id DESC LIMIT ?
		 )`,
		sess.ID, sess.ID, snapshotKeep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// LoadLatestSession restores the most recent snapshot of any session, or
// nil if nothing was saved yet.
func (s *Store) LoadLatestSession(ctx context.Context) (*session.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM session_snapshots ORDER BY id DESC LIMIT 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}
