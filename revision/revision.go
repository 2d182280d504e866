// Package revision tracks a revision counter per stored property.
//
// Editors snapshot a revision before reading a property and write back only if
// it has not moved. Missing keys are revision 0.
package revision

import (
	"context"
	"time"
)

// Store abstracts where revisions live.
// Use Local (default) for a single process, or Redis to share across processes.
type Store interface {
	// Snapshot returns the current revision; missing => 0.
	Snapshot(ctx context.Context, storageKey string) (uint64, error)
	// SnapshotMany returns revisions for many keys; missing => 0.
	SnapshotMany(ctx context.Context, storageKeys []string) (map[string]uint64, error)
	// Bump atomically increments and returns the new revision.
	Bump(ctx context.Context, storageKey string) (uint64, error)
	// Cleanup prunes old metadata if applicable (no-op for Redis).
	Cleanup(retention time.Duration)
	// Close releases resources (no-op ok).
	Close(context.Context) error
}
