// Package ristretto stores property frames in an in-process Ristretto cache.
package ristretto

import (
	"context"
	"fmt"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/argb/provider"
)

// Config sizes the cache. Zero fields take defaults derived from MaxCost.
type Config struct {
	MaxCost     int64 // total cost budget; the property store charges 1 per entry by default
	NumCounters int64 // default 10 * MaxCost
	BufferItems int64 // default 64
	Metrics     bool
}

const defaultMaxCost = 1000

// Provider keeps properties in a cost-bounded Ristretto cache.
// Set waits for the write buffer to drain so an editor reads back what it wrote.
type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

func New(cfg Config) (*Provider, error) {
	if cfg.MaxCost < 0 || cfg.NumCounters < 0 || cfg.BufferItems < 0 {
		return nil, fmt.Errorf("ristretto: negative size in config %+v", cfg)
	}
	if cfg.MaxCost == 0 {
		cfg.MaxCost = defaultMaxCost
	}
	if cfg.NumCounters == 0 {
		cfg.NumCounters = 10 * cfg.MaxCost
	}
	if cfg.BufferItems == 0 {
		cfg.BufferItems = 64
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto: %w", err)
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok || b == nil {
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set admits the frame at the given cost (minimum 1). A rejected admission
// returns ok=false so the property store can report it.
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if cost < 1 {
		cost = 1
	}
	if ttl < 0 {
		ttl = 0
	}
	ok := p.c.SetWithTTL(key, value, cost, ttl)
	p.c.Wait()
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(context.Context) error {
	p.c.Close()
	return nil
}

// Metrics exposes Ristretto's counters (nil unless Config.Metrics).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
