package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded perspective switch.
type Entry struct {
	ID              string
	PerspectiveID   string
	PreviousID      string
	OverlayFailures int
	ActivatedAt     time.Time
}

// Store reads and writes activation entries.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts a switch. The entry id and timestamp are assigned
// here.
func (s *Store) Record(ctx context.Context, perspectiveID, previousID string, overlayFailures int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activations (id, perspective_id, previous_id, overlay_failures, activated_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), perspectiveID, previousID, overlayFailures, now(),
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, perspective_id, previous_id, overlay_failures, activated_at
		FROM activations
		ORDER BY activated_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.PerspectiveID, &e.PreviousID, &e.OverlayFailures, &e.ActivatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded switches.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activations`).Scan(&n)
	return n, err
}

// now is UTC truncated to seconds, consistent with sqlite defaults.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
