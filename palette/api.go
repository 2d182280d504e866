// Package palette stores named color properties with compare-and-swap safety
// via per-property revisions. A read never returns a value written under an
// older revision.
//
// Edit pattern:
//
//	rev := store.SnapshotRev(name) // before showing the property
//	c, _, _ := store.Get(ctx, name)
//	// ... user edits c ...
//	_ = store.SetWithRev(ctx, name, edited, rev, 0) // write iff nobody else did
package palette

import (
	"context"
	"time"

	"github.com/unkn0wn-root/argb"
	c "github.com/unkn0wn-root/argb/codec"
	pr "github.com/unkn0wn-root/argb/provider"
	rev "github.com/unkn0wn-root/argb/revision"
)

type SetCostFunc func(key string, raw []byte) int64

// Store is the provider-agnostic property store.
type Store interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, name string) (v argb.Color, ok bool, err error)
	SetWithRev(ctx context.Context, name string, value argb.Color, observedRev uint64, ttl time.Duration) error
	Invalidate(ctx context.Context, name string) error

	// Order-agnostic; missing keeps the order of names.
	GetMany(ctx context.Context, names []string) (values map[string]argb.Color, missing []string, err error)

	SnapshotRev(name string) uint64
	SnapshotRevs(names []string) map[string]uint64
}

// Options tune the store. Only Namespace and Provider are required.
type Options struct {
	Namespace string // e.g. "theme", "form:main"
	Provider  pr.Provider

	Codec           c.Codec[argb.Color] // nil => codec.Text
	Logger          argb.Logger         // nil => NopLogger
	Hooks           argb.Hooks          // nil => NopHooks
	DefaultTTL      time.Duration       // 0 => 10m; negative => no expiry
	CleanupInterval time.Duration       // 0 => 1h
	RevRetention    time.Duration       // 0 => 30d; negative => revisions are never pruned
	Disabled        bool
	ComputeSetCost  SetCostFunc // default 1
	Revisions       rev.Store   // nil => revision.Local; swept every CleanupInterval
}

func New(opts Options) (Store, error) {
	return newStore(opts)
}
