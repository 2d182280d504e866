// Package backend builds a palette.Store from CLI configuration.
package backend

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/argb"
	"github.com/unkn0wn-root/argb/codec"
	"github.com/unkn0wn-root/argb/internal/config"
	"github.com/unkn0wn-root/argb/palette"
	pr "github.com/unkn0wn-root/argb/provider"
	"github.com/unkn0wn-root/argb/provider/bigcache"
	"github.com/unkn0wn-root/argb/provider/redis"
	"github.com/unkn0wn-root/argb/provider/ristretto"
	"github.com/unkn0wn-root/argb/provider/sqlite"
	"github.com/unkn0wn-root/argb/revision"
)

// Open wires the configured provider, revision store and codec.
// sqlite and redis keep revisions next to the data so they survive restarts;
// the in-memory providers use local revisions.
func Open(ctx context.Context, cfg config.Config, log argb.Logger, hooks argb.Hooks) (palette.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, _ := codec.ByName(cfg.Codec)
	if cfg.MaxPayload > 0 {
		c = codec.LimitCodec[argb.Color]{Inner: c, MaxDecode: cfg.MaxPayload}
	}

	var (
		p    pr.Provider
		revs revision.Store
	)
	switch cfg.Provider {
	case "sqlite":
		sp, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		rs, err := revision.NewSQL(ctx, sp.DB())
		if err != nil {
			_ = sp.Close(ctx)
			return nil, err
		}
		if n, err := sp.Purge(ctx); err != nil {
			log.Warn("purging expired properties failed", argb.Fields{"err": err})
		} else if n > 0 {
			log.Debug("purged expired properties", argb.Fields{"count": n})
		}
		p, revs = sp, rs

	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rp, err := redis.New(redis.Config{Client: client, CloseClient: true})
		if err != nil {
			return nil, err
		}
		p, revs = rp, revision.NewRedis(client, cfg.Namespace, 0)

	case "bigcache":
		bp, err := bigcache.New(ctx, bigcache.Config{
			LifeWindow:         cfg.BigCache.LifeWindow,
			MaxEntriesInWindow: cfg.BigCache.MaxEntriesInWindow,
			MaxEntrySize:       cfg.BigCache.MaxEntrySize,
		})
		if err != nil {
			return nil, fmt.Errorf("backend: bigcache: %w", err)
		}
		p = bp

	case "ristretto":
		rp, err := ristretto.New(ristretto.Config{
			NumCounters: cfg.Ristretto.NumCounters,
			MaxCost:     cfg.Ristretto.MaxCost,
			BufferItems: cfg.Ristretto.BufferItems,
		})
		if err != nil {
			return nil, fmt.Errorf("backend: %w", err)
		}
		p = rp
	}

	log.Debug("opening property store", argb.Fields{
		"provider":  cfg.Provider,
		"codec":     cfg.Codec,
		"namespace": cfg.Namespace,
	})
	return palette.New(palette.Options{
		Namespace:    cfg.Namespace,
		Provider:     p,
		Codec:        c,
		Logger:       log,
		Hooks:        hooks,
		DefaultTTL:   cfg.TTL,
		RevRetention: cfg.RevRetention,
		Revisions:    revs,
	})
}
