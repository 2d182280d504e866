package palette

import (
	"context"
	"sync"
	"time"

	"github.com/unkn0wn-root/argb"
	c "github.com/unkn0wn-root/argb/codec"
	"github.com/unkn0wn-root/argb/internal/defaults"
	"github.com/unkn0wn-root/argb/internal/wire"
	pr "github.com/unkn0wn-root/argb/provider"
	rev "github.com/unkn0wn-root/argb/revision"
)

const (
	defaultTTL          = 10 * time.Minute
	defaultRevRetention = 30 * 24 * time.Hour
	defaultSweep        = time.Hour
)

type store struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[argb.Color]
	codecID  byte
	log      argb.Logger
	hooks    argb.Hooks
	enabled  bool

	defaultTTL     time.Duration
	computeSetCost SetCostFunc
	revs           rev.Store

	stopSweep chan struct{}
	sweepWG   sync.WaitGroup
	closeOnce sync.Once
}

func newStore(opts Options) (*store, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	s := &store{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	s.codec = opts.Codec
	if s.codec == nil {
		s.codec = c.Text{}
	}
	s.codecID = c.IDOf(s.codec)
	s.log = defaults.Coalesce[argb.Logger](opts.Logger, argb.NopLogger{})
	s.hooks = defaults.Coalesce[argb.Hooks](opts.Hooks, argb.NopHooks{})
	s.defaultTTL = defaults.Coalesce(opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}

	every := defaults.Coalesce(opts.CleanupInterval, defaultSweep)
	retention := defaults.Coalesce(opts.RevRetention, defaultRevRetention)
	if opts.Revisions == nil {
		s.revs = rev.NewLocal(every, retention)
		return s, nil
	}

	// A supplied store may outlive this process (sqlite, redis), so prune once
	// now and then on the same schedule Local uses.
	s.revs = opts.Revisions
	if retention > 0 {
		s.revs.Cleanup(retention)
		if every > 0 {
			s.stopSweep = make(chan struct{})
			s.sweepWG.Add(1)
			go s.sweep(every, retention)
		}
	}
	return s, nil
}

func (s *store) sweep(every, retention time.Duration) {
	defer s.sweepWG.Done()
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.revs.Cleanup(retention)
		case <-s.stopSweep:
			return
		}
	}
}

func (s *store) Enabled() bool { return s.enabled }

func (s *store) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		if s.stopSweep != nil {
			close(s.stopSweep)
			s.sweepWG.Wait()
		}
	})
	_ = s.revs.Close(ctx) // best effort
	return s.provider.Close(ctx)
}

func (s *store) Get(ctx context.Context, name string) (argb.Color, bool, error) {
	if !s.enabled {
		return nil, false, nil
	}
	k := s.key(name)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	cur, err := s.snapshotRev(ctx, k)
	if err != nil {
		return nil, false, err
	}
	v, ok := s.decodeEntry(ctx, k, raw, cur)
	return v, ok, nil
}

// decodeEntry validates a stored frame against the current revision and
// codec. Anything that does not match is dropped.
func (s *store) decodeEntry(ctx context.Context, storageKey string, raw []byte, cur uint64) (argb.Color, bool) {
	e, err := wire.Decode(raw)
	if err != nil {
		s.selfHeal(ctx, storageKey, "corrupt")
		return nil, false
	}
	if e.CodecID != s.codecID {
		s.selfHeal(ctx, storageKey, "codec_mismatch")
		return nil, false
	}
	if e.Rev != cur {
		s.selfHeal(ctx, storageKey, "rev_mismatch")
		return nil, false
	}
	v, err := s.codec.Decode(e.Payload)
	if err != nil {
		s.selfHeal(ctx, storageKey, "value_decode")
		return nil, false
	}
	return v, true
}

func (s *store) SetWithRev(ctx context.Context, name string, value argb.Color, observedRev uint64, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	k := s.key(name)
	cur, err := s.snapshotRev(ctx, k)
	if err != nil {
		return err
	}
	if cur != observedRev {
		s.log.Debug("SetWithRev skipped (rev mismatch)", argb.Fields{"name": name, "obs": observedRev, "cur": cur})
		return ErrConflict
	}

	payload, err := s.codec.Encode(argb.Normalize(value))
	if err != nil {
		return err
	}
	raw := wire.Encode(observedRev, s.codecID, payload)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), s.ttl(ttl))
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("SetWithRev rejected by provider (pressure)", argb.Fields{"name": name})
	}
	return nil
}

func (s *store) Invalidate(ctx context.Context, name string) error {
	if !s.enabled {
		return nil
	}
	k := s.key(name)

	newRev, bumpErr := s.revs.Bump(ctx, k)
	if bumpErr != nil {
		s.hooks.RevisionError(k, bumpErr)
	}
	delErr := s.provider.Del(ctx, k)

	switch {
	case bumpErr != nil && delErr != nil:
		s.hooks.InvalidateOutage(name, bumpErr, delErr)
		s.log.Error("invalidate failed", argb.Fields{"name": name, "bump_err": bumpErr, "del_err": delErr})
		return &InvalidateError{Name: name, BumpErr: bumpErr, DelErr: delErr}
	case bumpErr != nil:
		// entry is gone but a racing writer with an old snapshot can still land
		return &InvalidateError{Name: name, BumpErr: bumpErr}
	case delErr != nil:
		// the bumped revision already hides the old entry; it self-heals on read
		s.log.Warn("invalidate: delete failed", argb.Fields{"name": name, "err": delErr})
	}
	s.log.Debug("invalidated property", argb.Fields{"name": name, "rev": newRev})
	return nil
}

func (s *store) GetMany(ctx context.Context, names []string) (map[string]argb.Color, []string, error) {
	out := make(map[string]argb.Color, len(names))
	if !s.enabled {
		return out, append([]string(nil), names...), nil
	}
	bg, ok := s.provider.(pr.BatchGetter)
	if !ok {
		var missing []string
		for _, n := range names {
			v, ok, err := s.Get(ctx, n)
			if err != nil {
				return out, nil, err
			}
			if ok {
				out[n] = v
			} else {
				missing = append(missing, n)
			}
		}
		return out, missing, nil
	}

	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = s.key(n)
	}
	raws, err := bg.GetMany(ctx, keys)
	if err != nil {
		return out, nil, err
	}
	revs, err := s.revs.SnapshotMany(ctx, keys)
	if err != nil {
		s.hooks.RevisionError(s.key("*"), err)
		s.log.Warn("revision snapshot error", argb.Fields{"keys": len(keys), "err": err})
		return out, nil, err
	}

	var missing []string
	for i, n := range names {
		raw, hit := raws[keys[i]]
		if hit {
			if v, ok := s.decodeEntry(ctx, keys[i], raw, revs[keys[i]]); ok {
				out[n] = v
				continue
			}
		}
		missing = append(missing, n)
	}
	return out, missing, nil
}

func (s *store) SnapshotRev(name string) uint64 {
	r, _ := s.snapshotRev(context.Background(), s.key(name))
	return r
}

func (s *store) SnapshotRevs(names []string) map[string]uint64 {
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = s.key(n)
	}
	m, err := s.revs.SnapshotMany(context.Background(), keys)
	if err != nil {
		s.hooks.RevisionError(s.ns, err)
		// conservative fallback: one by one
		out := make(map[string]uint64, len(names))
		for _, n := range names {
			out[n] = s.SnapshotRev(n)
		}
		return out
	}
	out := make(map[string]uint64, len(names))
	for i, n := range names {
		out[n] = m[keys[i]]
	}
	return out
}

func (s *store) snapshotRev(ctx context.Context, storageKey string) (uint64, error) {
	r, err := s.revs.Snapshot(ctx, storageKey)
	if err != nil {
		s.hooks.RevisionError(storageKey, err)
		s.log.Warn("revision snapshot error", argb.Fields{"key": storageKey, "err": err})
		return 0, err
	}
	return r, nil
}

func (s *store) selfHeal(ctx context.Context, storageKey, reason string) {
	_ = s.provider.Del(ctx, storageKey)
	s.hooks.SelfHeal(storageKey, reason)
	s.log.Debug("dropped stored property", argb.Fields{"key": storageKey, "reason": reason})
}

func (s *store) ttl(ttl time.Duration) time.Duration {
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	if ttl < 0 {
		return 0
	}
	return ttl
}

func (s *store) key(name string) string {
	return "prop:" + s.ns + ":" + name
}
