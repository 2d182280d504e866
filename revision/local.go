package revision

import (
	"context"
	"sync"
	"time"
)

type localEntry struct {
	rev       uint64
	updatedAt time.Time
}

// Local keeps revisions in-process, with an optional sweeper that drops
// entries not bumped within the retention window.
type Local struct {
	mu   sync.RWMutex
	revs map[string]localEntry

	stopCh    chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ Store = (*Local)(nil)

// NewLocal starts the sweeper when both cleanupInterval and retention are positive.
func NewLocal(cleanupInterval, retention time.Duration) *Local {
	s := &Local{revs: make(map[string]localEntry)}
	if cleanupInterval > 0 && retention > 0 {
		s.stopCh = make(chan struct{})
		s.wg.Add(1)
		go s.sweep(cleanupInterval, retention)
	}
	return s
}

func (s *Local) sweep(every, retention time.Duration) {
	defer s.wg.Done()
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.Cleanup(retention)
		case <-s.stopCh:
			return
		}
	}
}

func (s *Local) Snapshot(_ context.Context, k string) (uint64, error) {
	s.mu.RLock()
	e := s.revs[k]
	s.mu.RUnlock()
	return e.rev, nil
}

// SnapshotMany reads all keys under one read lock.
func (s *Local) SnapshotMany(_ context.Context, ks []string) (map[string]uint64, error) {
	out := make(map[string]uint64, len(ks))
	s.mu.RLock()
	for _, k := range ks {
		out[k] = s.revs[k].rev
	}
	s.mu.RUnlock()
	return out, nil
}

func (s *Local) Bump(_ context.Context, k string) (uint64, error) {
	now := time.Now()
	s.mu.Lock()
	e := s.revs[k]
	e.rev++
	e.updatedAt = now
	s.revs[k] = e
	s.mu.Unlock()
	return e.rev, nil
}

func (s *Local) Cleanup(retention time.Duration) {
	if retention <= 0 {
		return
	}
	cutoff := time.Now().Add(-retention)

	s.mu.Lock()
	for k, e := range s.revs {
		if e.updatedAt.Before(cutoff) {
			delete(s.revs, k)
		}
	}
	s.mu.Unlock()
}

// Close stops the sweeper. Safe to call more than once.
func (s *Local) Close(_ context.Context) error {
	s.closeOnce.Do(func() {
		if s.stopCh != nil {
			close(s.stopCh)
			s.wg.Wait()
		}
	})
	return nil
}
