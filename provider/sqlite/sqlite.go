// Package sqlite persists properties in a local SQLite file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	pr "github.com/unkn0wn-root/argb/provider"
)

// Provider is a durable byte store. Expired rows are dropped lazily on Get.
type Provider struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ pr.Provider    = (*Provider)(nil)
	_ pr.BatchGetter = (*Provider)(nil)
)

// Open creates or opens the database at path (a leading ~ expands to the home
// directory), creating parent directories and the schema as needed.
func Open(path string) (*Provider, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("provider: sqlite: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("provider: sqlite: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("provider: sqlite: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("provider: sqlite: cannot connect to database: %w", err)
	}

	p := &Provider{db: db, now: time.Now}
	if err := p.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("provider: sqlite: migration failed: %w", err)
	}
	return p, nil
}

// expires_at is unix nanoseconds; 0 means no expiry.
func (p *Provider) migrate() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS props (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expires_at INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_props_expires ON props(expires_at);
	`)
	return err
}

func (p *Provider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     []byte
		expiresAt int64
	)
	err := p.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM props WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("provider: sqlite: get %q: %w", key, err)
	}
	if expiresAt != 0 && p.now().UnixNano() >= expiresAt {
		_ = p.Del(ctx, key)
		return nil, false, nil
	}
	return value, true, nil
}

// GetMany reads every key in one query. Expired rows are skipped and left
// for Purge.
func (p *Provider) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	args := make([]any, 0, len(keys)+1)
	args = append(args, p.now().UnixNano())
	for _, k := range keys {
		args = append(args, k)
	}
	q := "SELECT key, value FROM props WHERE (expires_at = 0 OR expires_at > ?) AND key IN (?" +
		strings.Repeat(",?", len(keys)-1) + ")"
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("provider: sqlite: get many: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("provider: sqlite: get many: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (p *Provider) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = p.now().Add(ttl).UnixNano()
	}
	if value == nil {
		value = []byte{}
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO props (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return false, fmt.Errorf("provider: sqlite: set %q: %w", key, err)
	}
	return true, nil
}

func (p *Provider) Del(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM props WHERE key = ?", key); err != nil {
		return fmt.Errorf("provider: sqlite: del %q: %w", key, err)
	}
	return nil
}

// Purge deletes every expired row and returns how many were removed.
func (p *Provider) Purge(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx,
		"DELETE FROM props WHERE expires_at != 0 AND expires_at <= ?", p.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("provider: sqlite: purge: %w", err)
	}
	return res.RowsAffected()
}

func (p *Provider) Close(_ context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// DB exposes the handle so a revision.SQL store can share the file.
func (p *Provider) DB() *sql.DB { return p.db }
