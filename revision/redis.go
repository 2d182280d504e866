package revision

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps property revisions in Redis so every editor sharing a redis
// provider sees the same counter. Keys are "rev:<ns>:<storage key>".
//
// With a TTL the counter expires when a property goes untouched; it then reads
// as 0 and any frame still stored under the old revision self-heals.
type Redis struct {
	rdb redis.UniversalClient
	ns  string
	ttl time.Duration // <= 0 disables expiry
}

var _ Store = (*Redis)(nil)

// NewRedis wraps client. The caller keeps ownership of it.
func NewRedis(client redis.UniversalClient, namespace string, ttl time.Duration) *Redis {
	return &Redis{rdb: client, ns: namespace, ttl: ttl}
}

func (s *Redis) key(storageKey string) string { return "rev:" + s.ns + ":" + storageKey }

func (s *Redis) Snapshot(ctx context.Context, storageKey string) (uint64, error) {
	return readRev(s.rdb.Get(ctx, s.key(storageKey)), storageKey)
}

// SnapshotMany pipelines one GET per key. MGET would fail once the keys land
// on different cluster slots.
func (s *Redis) SnapshotMany(ctx context.Context, storageKeys []string) (map[string]uint64, error) {
	out := make(map[string]uint64, len(storageKeys))
	if len(storageKeys) == 0 {
		return out, nil
	}
	cmds := make([]*redis.StringCmd, len(storageKeys))
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, k := range storageKeys {
			cmds[i] = p.Get(ctx, s.key(k))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("revision: redis: snapshot many: %w", err)
	}
	for i, k := range storageKeys {
		r, err := readRev(cmds[i], k)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}

// Bump increments the revision. With a TTL, INCR and EXPIRE run in one
// MULTI so a counter is never left without its expiry.
func (s *Redis) Bump(ctx context.Context, storageKey string) (uint64, error) {
	k := s.key(storageKey)
	if s.ttl <= 0 {
		v, err := s.rdb.Incr(ctx, k).Uint64()
		if err != nil {
			return 0, fmt.Errorf("revision: redis: bump %s: %w", storageKey, err)
		}
		return v, nil
	}

	var incr *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("revision: redis: bump %s: %w", storageKey, err)
	}
	return incr.Uint64()
}

// Cleanup is a no-op; Redis expires counters itself when a TTL is set.
func (s *Redis) Cleanup(time.Duration) {}

func (s *Redis) Close(context.Context) error { return nil }

// readRev turns a GET reply into a revision; a missing key is 0.
func readRev(cmd *redis.StringCmd, storageKey string) (uint64, error) {
	raw, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("revision: redis: snapshot %s: %w", storageKey, err)
	}
	r, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("revision: redis: bad revision at %s: %w", storageKey, err)
	}
	return r, nil
}
