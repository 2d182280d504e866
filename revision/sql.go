package revision

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQL keeps revisions in a database table next to the stored properties, so
// they survive restarts when the sqlite provider is used. The upsert relies on
// ON CONFLICT ... RETURNING (SQLite >= 3.35, PostgreSQL).
type SQL struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQL)(nil)

// NewSQL creates the revs table if needed. The caller owns db.
func NewSQL(ctx context.Context, db *sql.DB) (*SQL, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS revs (
			key TEXT PRIMARY KEY,
			rev INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("revision: sql: migrate: %w", err)
	}
	return &SQL{db: db, now: time.Now}, nil
}

func (s *SQL) Snapshot(ctx context.Context, storageKey string) (uint64, error) {
	var r int64
	err := s.db.QueryRowContext(ctx, "SELECT rev FROM revs WHERE key = ?", storageKey).Scan(&r)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("revision: sql: snapshot: %w", err)
	}
	return uint64(r), nil
}

func (s *SQL) SnapshotMany(ctx context.Context, storageKeys []string) (map[string]uint64, error) {
	out := make(map[string]uint64, len(storageKeys))
	if len(storageKeys) == 0 {
		return out, nil
	}
	args := make([]any, len(storageKeys))
	for i, k := range storageKeys {
		out[k] = 0
		args[i] = k
	}
	q := "SELECT key, rev FROM revs WHERE key IN (?" + strings.Repeat(",?", len(storageKeys)-1) + ")"
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("revision: sql: snapshot many: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			k string
			r int64
		)
		if err := rows.Scan(&k, &r); err != nil {
			return nil, fmt.Errorf("revision: sql: scan: %w", err)
		}
		out[k] = uint64(r)
	}
	return out, rows.Err()
}

func (s *SQL) Bump(ctx context.Context, storageKey string) (uint64, error) {
	var r int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO revs (key, rev, updated_at) VALUES (?, 1, ?)
		 ON CONFLICT(key) DO UPDATE SET rev = rev + 1, updated_at = excluded.updated_at
		 RETURNING rev`,
		storageKey, s.now().UnixNano(),
	).Scan(&r)
	if err != nil {
		return 0, fmt.Errorf("revision: sql: bump: %w", err)
	}
	return uint64(r), nil
}

// Cleanup drops revisions not bumped within retention. Errors are ignored;
// the next sweep retries.
func (s *SQL) Cleanup(retention time.Duration) {
	if retention <= 0 {
		return
	}
	cutoff := s.now().Add(-retention).UnixNano()
	_, _ = s.db.Exec("DELETE FROM revs WHERE updated_at < ?", cutoff)
}

// Close leaves db open; the caller owns it.
func (s *SQL) Close(context.Context) error { return nil }
